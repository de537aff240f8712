// Package resolve coordinates release resolution across projects.
//
// A Resolver binds the two input collaborators — a feed document provider
// and an installed-version lookup — to the release engine. Resolve handles
// one project; ResolveAll fans a batch out over a bounded worker pool and
// accumulates per-project outcomes so a failing project never aborts its
// siblings.
package resolve

import (
	"context"

	"github.com/relwatch/relwatch/pkg/errors"
	"github.com/relwatch/relwatch/pkg/feed"
	"github.com/relwatch/relwatch/pkg/release"
)

// Strategy controls how a missing stable release is treated.
type Strategy string

const (
	// StrategyNever treats a missing stable release as fatal.
	StrategyNever Strategy = "never"
	// StrategyAuto degrades to a warning so the caller can offer a choice.
	StrategyAuto Strategy = "auto"
	// StrategyIgnore degrades silently.
	StrategyIgnore Strategy = "ignore"
)

// ParseStrategy validates a strategy name before any lookup happens.
// Unknown names are rejected with [errors.ErrCodeUnknownStrategy].
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyNever, StrategyAuto, StrategyIgnore:
		return Strategy(s), nil
	}
	return "", errors.New(errors.ErrCodeUnknownStrategy, "unknown selection strategy %q (expected never, auto, or ignore)", s)
}

// Fatal reports whether err aborts a resolution under this strategy.
// Only a missing stable release is degradable; every other failure is
// fatal regardless of strategy.
func (s Strategy) Fatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrCodeNoStableRelease) {
		return s == StrategyNever
	}
	return true
}

// Options configure a Resolver.
type Options struct {
	// Strategy decides whether a missing stable release is fatal.
	// Defaults to StrategyNever.
	Strategy Strategy
	// Workers bounds batch concurrency. Defaults to DefaultWorkers.
	Workers int
	// Logger receives progress messages. Nil disables logging.
	Logger func(msg string, args ...any)
}

// WithDefaults fills in zero-valued options.
func (o Options) WithDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyNever
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		o.Logger = func(string, ...any) {}
	}
	return o
}

// Resolver resolves release requests against a feed provider.
type Resolver struct {
	provider  feed.Provider
	installed release.InstalledLookup
	opts      Options
}

// New creates a Resolver over the given collaborators.
// The installed lookup may be nil when no local installation exists.
func New(provider feed.Provider, installed release.InstalledLookup, opts Options) *Resolver {
	return &Resolver{
		provider:  provider,
		installed: installed,
		opts:      opts.WithDefaults(),
	}
}

// Strategy returns the resolver's configured strategy.
func (r *Resolver) Strategy() Strategy { return r.opts.Strategy }

// Resolve fetches the project's feed document, builds its catalog, and
// selects the best-matching release. All failures are returned as coded
// errors; see [release.Select] for the outcome taxonomy.
func (r *Resolver) Resolve(ctx context.Context, req release.Request) (*release.Release, error) {
	doc, err := r.provider.Get(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	cat, err := release.Build(doc, r.installed)
	if err != nil {
		return nil, err
	}
	return release.Select(cat, req)
}

// Catalog fetches the project's feed document and builds its catalog
// without selecting a release. Used for candidate listing.
func (r *Resolver) Catalog(ctx context.Context, project string) (*release.Catalog, error) {
	doc, err := r.provider.Get(ctx, project)
	if err != nil {
		return nil, err
	}
	return release.Build(doc, r.installed)
}
