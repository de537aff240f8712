// Package feed defines the structured release feed consumed by the engine.
//
// A Document is the normalized form of one project's published-version feed
// as produced by an upstream update service. How the raw markup is fetched
// and parsed into a Document is a transport concern and lives outside this
// module; the engine only ever sees the structured form.
package feed

import "fmt"

// Project status values carried by a Document.
const (
	StatusPublished   = "published"
	StatusUnpublished = "unpublished"
)

// Document is the released-version feed for one project.
//
// Releases preserve document order from the source feed. The order is
// significant: catalog building and selection both resolve ties by the
// first release encountered, so reordering changes results.
type Document struct {
	Title            string        `json:"title"`
	ShortName        string        `json:"short_name"`
	APIVersion       string        `json:"api_version,omitempty"`
	RecommendedMajor int           `json:"recommended_major"`
	SupportedMajors  []int         `json:"supported_majors"`
	Status           string        `json:"project_status"`
	Link             string        `json:"link,omitempty"`
	Error            string        `json:"error,omitempty"` // feed-level error marker
	Releases         []ReleaseNode `json:"releases"`
}

// ReleaseNode is one published release entry in a Document.
type ReleaseNode struct {
	Version      string   `json:"version"`
	VersionMajor int      `json:"version_major"`
	VersionExtra string   `json:"version_extra,omitempty"` // "dev" marks a snapshot; empty means stable
	Date         int64    `json:"date"`                    // unix seconds
	ReleaseLink  string   `json:"release_link,omitempty"`
	DownloadLink string   `json:"download_link,omitempty"`
	Terms        []string `json:"terms,omitempty"` // release term values, e.g. "Security update"
}

// Name returns the best human-readable identifier for the document,
// preferring the short name over the title.
func (d *Document) Name() string {
	if d.ShortName != "" {
		return d.ShortName
	}
	return d.Title
}

// String implements fmt.Stringer for log output.
func (d *Document) String() string {
	return fmt.Sprintf("%s (%d releases, status %s)", d.Name(), len(d.Releases), d.Status)
}
