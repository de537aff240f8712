package release

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/relwatch/relwatch/pkg/errors"
)

// Restrict narrows the candidate set before selection or filtering.
type Restrict int

const (
	// RestrictNone applies no restriction.
	RestrictNone Restrict = iota
	// RestrictDev limits candidates to development snapshots.
	RestrictDev
	// RestrictVersion limits candidates to an explicitly requested version.
	RestrictVersion
)

// Request describes the desired release for one project.
type Request struct {
	Name string
	// Version is an exact version or a branch-wildcard form:
	// a trailing "-<major>" with no further qualifier names a whole major
	// line, and a ".x" suffix names that line's development snapshot.
	Version  string
	Restrict Restrict
}

// branchRE matches a request naming a whole major line, e.g. "8.x-2".
var branchRE = regexp.MustCompile(`-([0-9]+)$`)

// Select picks the single best-matching release from the catalog.
//
// The search has four stages, each short-circuiting:
//
//  1. Dev-forced: with RestrictDev, only snapshots qualify; none means
//     [errors.ErrCodeNoDevRelease] with no further fallback.
//  2. Exact/branch: a requested version resolves to its match set; an
//     empty set means [errors.ErrCodeVersionNotFound] with no fallback to
//     "most appropriate".
//  3. Most appropriate: the recommended major line, then each supported
//     major in order until one is non-empty.
//  4. Tie-break: stable releases beat snapshots; within the preferred
//     subset the first in document order wins. Never date-based.
//
// When every stage comes up empty, Select returns
// [errors.ErrCodeNoStableRelease].
func Select(cat *Catalog, req Request) (*Release, error) {
	var candidates []*Release

	switch {
	case req.Restrict == RestrictDev:
		candidates = matchDev(cat)
		if len(candidates) == 0 {
			return nil, errors.New(errors.ErrCodeNoDevRelease, "no development release found for %s", cat.ShortName)
		}

	case req.Version != "":
		candidates = matchVersion(cat, req.Version)
		if len(candidates) == 0 {
			return nil, errors.New(errors.ErrCodeVersionNotFound, "version %s not found for %s", req.Version, cat.ShortName)
		}

	default:
		candidates = matchMajor(cat, cat.RecommendedMajor)
		for _, m := range cat.SupportedMajors {
			if len(candidates) > 0 {
				break
			}
			candidates = matchMajor(cat, m)
		}
	}

	if best := bestOf(candidates); best != nil {
		return best, nil
	}
	return nil, errors.New(errors.ErrCodeNoStableRelease, "no stable release found for %s", cat.ShortName)
}

// bestOf applies the tie-break to a candidate set: the first stable release
// in document order, or the first candidate overall when none are stable.
// Returns nil for an empty set.
func bestOf(candidates []*Release) *Release {
	for _, r := range candidates {
		if r.Stable() {
			return r
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}

// matchVersion resolves a requested version string to its match set,
// preserving document order.
func matchVersion(cat *Catalog, requested string) []*Release {
	if m := branchRE.FindStringSubmatch(requested); m != nil {
		major, err := strconv.Atoi(m[1])
		if err == nil {
			return matchMajor(cat, major)
		}
	}
	if strings.HasSuffix(requested, ".x") {
		requested += "-" + DevExtra
	}
	if r, ok := cat.Release(requested); ok {
		return []*Release{r}
	}
	return nil
}

func matchMajor(cat *Catalog, major int) []*Release {
	var out []*Release
	for _, r := range cat.releases {
		if r.Major == major {
			out = append(out, r)
		}
	}
	return out
}

func matchDev(cat *Catalog) []*Release {
	var out []*Release
	for _, r := range cat.releases {
		if r.Dev() {
			out = append(out, r)
		}
	}
	return out
}
