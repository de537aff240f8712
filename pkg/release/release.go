// Package release implements the release resolution and filtering engine.
//
// The engine operates on immutable value objects built once per feed
// document: Build turns a feed.Document into a Catalog of tagged releases,
// Select picks the single best-matching release for a request through a
// layered fallback search, and Filter produces a ranked candidate list for
// display. None of the entry points perform I/O; the feed document and the
// installed-version lookup are collaborators completed before the engine
// runs.
package release

import (
	"fmt"
	"slices"
	"time"
)

// DevExtra is the version-extra value marking a development snapshot.
const DevExtra = "dev"

// Tag is a derived status label attached to a release during catalog
// building. A release may carry several tags; their insertion order is
// significant for first-of-kind suppression in Filter.
type Tag string

// Status tags computed by Build, in tagging precedence order.
const (
	TagSupported   Tag = "Supported"
	TagRecommended Tag = "Recommended"
	TagDevelopment Tag = "Development"
	TagSecurity    Tag = "Security"
	TagInstalled   Tag = "Installed"
)

// Release is one published, immutable version record of a project.
type Release struct {
	Version      string // unique key within a catalog
	Major        int    // major version line, derived from Version upstream
	Extra        string // "dev" for snapshots; empty for stable releases
	Date         int64  // unix seconds, used for recency ordering
	ReleaseLink  string
	DownloadLink string
	Tags         []Tag // insertion order matters for filtering
}

// Stable reports whether the release has no version extra.
func (r *Release) Stable() bool { return r.Extra == "" }

// Dev reports whether the release is a development snapshot.
func (r *Release) Dev() bool { return r.Extra == DevExtra }

// HasTag reports whether the release carries the given status tag.
func (r *Release) HasTag(t Tag) bool { return slices.Contains(r.Tags, t) }

// Time returns the release date as a time.Time.
func (r *Release) Time() time.Time { return time.Unix(r.Date, 0).UTC() }

// String implements fmt.Stringer for log output.
func (r *Release) String() string {
	return fmt.Sprintf("%s (%s)", r.Version, r.Time().Format("2006-01-02"))
}

// InstalledLookup reports the currently installed version for a project,
// if known. It is consulted once per catalog build.
type InstalledLookup func(project string) (version string, ok bool)

// Catalog is the normalized, immutable snapshot of all known releases for
// one project at resolution time. Treat a Catalog as read-only after Build;
// Select and Filter derive new collections and never edit it in place.
type Catalog struct {
	Title     string
	ShortName string
	Status    string
	Link      string

	// Document-level majors, independent of individual releases.
	RecommendedMajor int
	SupportedMajors  []int

	// RecommendedVersion names the single release tagged Recommended,
	// if any. InstalledVersion is set only when the installed lookup
	// matched a release.
	RecommendedVersion string
	InstalledVersion   string

	releases []*Release
	index    map[string]int // version -> position in releases
}

// Len returns the number of releases in the catalog.
func (c *Catalog) Len() int { return len(c.releases) }

// Releases returns all releases in document order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Releases() []*Release { return c.releases }

// Release looks up a release by exact version string.
func (c *Catalog) Release(version string) (*Release, bool) {
	i, ok := c.index[version]
	if !ok {
		return nil, false
	}
	return c.releases[i], true
}

// Recommended returns the release tagged Recommended, if any.
func (c *Catalog) Recommended() (*Release, bool) {
	if c.RecommendedVersion == "" {
		return nil, false
	}
	return c.Release(c.RecommendedVersion)
}

// Installed returns the release matching the installed version, if any.
func (c *Catalog) Installed() (*Release, bool) {
	if c.InstalledVersion == "" {
		return nil, false
	}
	return c.Release(c.InstalledVersion)
}
