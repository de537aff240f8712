package release

import (
	"cmp"
	"slices"
)

// FilterOptions control which releases survive filtering.
type FilterOptions struct {
	// ShowAll keeps every release instead of suppressing repeats.
	ShowAll bool
	// Restrict limits candidates; only RestrictDev affects filtering.
	Restrict Restrict
}

// Filter produces the display-ordered candidate list for a catalog.
//
// Releases are sorted with the major line dominant: a higher major always
// sorts first, and the release date breaks ties only within one major.
// The sorted list is then walked once, keeping a release when ShowAll is
// set, when it shares the installed release's major and no installed
// release has been passed yet, or when it is the first of its
// (major, status tag) kind.
//
// When the walk finds no installed release, the pass is retried with the
// until-installed window closed, and a still-empty result forces a final
// pass with ShowAll set. Filter therefore never returns an empty list for
// a catalog that has releases (unless RestrictDev excludes them all).
func Filter(cat *Catalog, opts FilterOptions) []*Release {
	sorted := sortForDisplay(cat.releases)

	installedMajor, haveInstalled := 0, false
	for _, r := range sorted {
		if r.HasTag(TagInstalled) {
			installedMajor, haveInstalled = r.Major, true
			break
		}
	}

	showAll := opts.ShowAll
	untilInstalled := true

	// Bounded escalation: close the until-installed window, then show all.
	for i := 0; i < 3; i++ {
		out, remained := walk(sorted, opts.Restrict, showAll, untilInstalled, installedMajor, haveInstalled)
		if !showAll && untilInstalled && remained {
			untilInstalled = false
			continue
		}
		if len(out) == 0 && !showAll {
			showAll = true
			continue
		}
		return out
	}
	return nil
}

type majorTag struct {
	major int
	tag   Tag
}

// walk performs one filtering pass over the sorted releases. It reports the
// selected releases and whether the until-installed window stayed open for
// the whole pass (i.e. no installed release was encountered).
func walk(sorted []*Release, restrict Restrict, showAll, untilInstalled bool, installedMajor int, haveInstalled bool) ([]*Release, bool) {
	seen := make(map[majorTag]bool)
	var out []*Release

	for _, r := range sorted {
		if restrict == RestrictDev && !r.Dev() {
			continue
		}

		firstOfKind := false
		for _, t := range r.Tags {
			k := majorTag{r.Major, t}
			if seen[k] {
				continue
			}
			seen[k] = true
			firstOfKind = true
			if t == TagInstalled {
				untilInstalled = false
			}
		}

		switch {
		case showAll:
			out = append(out, r)
		case untilInstalled && haveInstalled && r.Major == installedMajor:
			out = append(out, r)
		case firstOfKind:
			out = append(out, r)
		}
	}

	return out, untilInstalled
}

// sortForDisplay orders releases with the major line dominant and the date
// breaking ties within one major, newest first. The input is not modified.
func sortForDisplay(releases []*Release) []*Release {
	sorted := slices.Clone(releases)
	slices.SortStableFunc(sorted, func(a, b *Release) int {
		if a.Major != b.Major {
			return cmp.Compare(b.Major, a.Major)
		}
		return cmp.Compare(b.Date, a.Date)
	})
	return sorted
}
