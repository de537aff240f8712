package resolve

import (
	"context"
	"sync"

	"github.com/relwatch/relwatch/pkg/release"
)

// DefaultWorkers bounds batch concurrency when Options.Workers is unset.
const DefaultWorkers = 8

// Result is the outcome of one project's resolution within a batch.
type Result struct {
	Name    string
	Release *release.Release // nil when Err is set
	Err     error            // coded error; see pkg/errors
	Fatal   bool             // whether Err aborts under the configured strategy
}

// ResolveAll resolves every request concurrently and returns one Result per
// request, in request order. Failures are accumulated, never propagated:
// a project whose feed is missing or broken yields a Result with Err set
// while its siblings proceed. Cancellation is honored between jobs.
func (r *Resolver) ResolveAll(ctx context.Context, reqs []release.Request) []Result {
	results := make([]Result, len(reqs))

	workers := r.opts.Workers
	if workers > len(reqs) {
		workers = len(reqs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.resolveOne(ctx, reqs[i])
			}
		}()
	}

	for i := range reqs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Resolver) resolveOne(ctx context.Context, req release.Request) Result {
	if err := ctx.Err(); err != nil {
		return Result{Name: req.Name, Err: err, Fatal: true}
	}

	rel, err := r.Resolve(ctx, req)
	res := Result{Name: req.Name, Release: rel, Err: err}
	if err != nil {
		res.Fatal = r.opts.Strategy.Fatal(err)
		r.opts.Logger("resolution failed for %s: %v", req.Name, err)
	}
	return res
}
