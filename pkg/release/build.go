package release

import (
	"strings"

	"github.com/relwatch/relwatch/pkg/errors"
	"github.com/relwatch/relwatch/pkg/feed"
)

// Build converts a feed document into a catalog of tagged releases.
//
// Document-level fields pass through verbatim. Per-release status tags are
// computed in a fixed precedence order (Supported, Recommended, Development,
// Security, Installed); all tags that apply are added. The installed lookup
// may be nil when no local installation exists.
//
// Build fails without producing a catalog when the document carries an
// error marker ([errors.ErrCodeFeedError]) or reports the project as
// unpublished ([errors.ErrCodeProjectUnpublished]). Both are unrecoverable
// for the project and distinct from a catalog with no releases.
func Build(doc *feed.Document, installed InstalledLookup) (*Catalog, error) {
	if doc.Error != "" {
		return nil, errors.New(errors.ErrCodeFeedError, "feed for %s reported an error: %s", doc.Name(), doc.Error)
	}
	if doc.Status == feed.StatusUnpublished {
		return nil, errors.New(errors.ErrCodeProjectUnpublished, "project %s is unpublished", doc.Name())
	}

	cat := &Catalog{
		Title:            doc.Title,
		ShortName:        doc.ShortName,
		Status:           doc.Status,
		Link:             doc.Link,
		RecommendedMajor: doc.RecommendedMajor,
		SupportedMajors:  doc.SupportedMajors,
		index:            make(map[string]int, len(doc.Releases)),
	}

	installedVersion := ""
	if installed != nil {
		installedVersion, _ = installed(doc.Name())
	}

	// Each supported major is claimed by the first release of that line
	// encountered in document order.
	unclaimed := make(map[int]bool, len(doc.SupportedMajors))
	for _, m := range doc.SupportedMajors {
		unclaimed[m] = true
	}

	// latest is the first release of the recommended major regardless of
	// stability; it becomes Recommended only if no stable release of that
	// major exists.
	var recommended, latest *Release

	for _, node := range doc.Releases {
		if _, dup := cat.index[node.Version]; dup {
			continue // versions are unique per catalog; first node wins
		}

		r := &Release{
			Version:      node.Version,
			Major:        node.VersionMajor,
			Extra:        node.VersionExtra,
			Date:         node.Date,
			ReleaseLink:  node.ReleaseLink,
			DownloadLink: node.DownloadLink,
		}

		if unclaimed[r.Major] {
			delete(unclaimed, r.Major)
			r.Tags = append(r.Tags, TagSupported)
		}

		if r.Major == doc.RecommendedMajor {
			if latest == nil {
				latest = r
			}
			if recommended == nil && r.Stable() {
				recommended = r
				cat.RecommendedVersion = r.Version
				r.Tags = append(r.Tags, TagRecommended)
			}
		}

		if r.Dev() {
			r.Tags = append(r.Tags, TagDevelopment)
		}

		if hasSecurityTerm(node.Terms) {
			r.Tags = append(r.Tags, TagSecurity)
		}

		if installedVersion != "" && installedVersion == r.Version {
			r.Tags = append(r.Tags, TagInstalled)
			cat.InstalledVersion = r.Version
		}

		cat.index[r.Version] = len(cat.releases)
		cat.releases = append(cat.releases, r)
	}

	// No stable release on the recommended major: fall back to the first
	// release of that line, dev or not.
	if recommended == nil && latest != nil {
		latest.Tags = append(latest.Tags, TagRecommended)
		cat.RecommendedVersion = latest.Version
	}

	return cat, nil
}

func hasSecurityTerm(terms []string) bool {
	for _, t := range terms {
		if strings.Contains(t, "Security") {
			return true
		}
	}
	return false
}
