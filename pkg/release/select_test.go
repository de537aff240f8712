package release

import (
	"testing"

	"github.com/relwatch/relwatch/pkg/errors"
	"github.com/relwatch/relwatch/pkg/feed"
)

func mustBuild(t *testing.T, doc *feed.Document) *Catalog {
	t.Helper()
	cat, err := Build(doc, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return cat
}

func TestSelectReferenceCatalog(t *testing.T) {
	cat := mustBuild(t, testDoc())

	tests := []struct {
		name     string
		req      Request
		want     string
		wantCode errors.Code
	}{
		{
			name: "NoConstraints",
			req:  Request{Name: "views"},
			want: "2.1",
		},
		{
			name: "DevForced",
			req:  Request{Name: "views", Restrict: RestrictDev},
			want: "2.0-dev",
		},
		{
			name: "BranchWildcardMajor",
			req:  Request{Name: "views", Version: "8.x-2", Restrict: RestrictVersion},
			want: "2.1", // stable release wins within major 2
		},
		{
			name: "BranchWildcardMajorOne",
			req:  Request{Name: "views", Version: "8.x-1", Restrict: RestrictVersion},
			want: "1.0",
		},
		{
			name: "ExactVersion",
			req:  Request{Name: "views", Version: "2.0-dev", Restrict: RestrictVersion},
			want: "2.0-dev",
		},
		{
			name:     "DevBranchResolvesToDevSuffix",
			req:      Request{Name: "views", Version: "1.x", Restrict: RestrictVersion},
			wantCode: errors.ErrCodeVersionNotFound, // looks up "1.x-dev", absent
		},
		{
			name:     "MissingExactVersion",
			req:      Request{Name: "views", Version: "8.x-2.5", Restrict: RestrictVersion},
			wantCode: errors.ErrCodeVersionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, err := Select(cat, tt.req)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Select() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() error: %v", err)
			}
			if rel.Version != tt.want {
				t.Errorf("Select() = %s, want %s", rel.Version, tt.want)
			}
		})
	}
}

func TestSelectDevBranchFound(t *testing.T) {
	doc := testDoc()
	doc.Releases = append(doc.Releases, feed.ReleaseNode{Version: "1.x-dev", VersionMajor: 1, VersionExtra: "dev", Date: 150})
	cat := mustBuild(t, doc)

	rel, err := Select(cat, Request{Name: "views", Version: "1.x", Restrict: RestrictVersion})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if rel.Version != "1.x-dev" {
		t.Errorf("Select() = %s, want 1.x-dev", rel.Version)
	}
}

func TestSelectNoDevRelease(t *testing.T) {
	doc := &feed.Document{
		ShortName:        "stable-only",
		RecommendedMajor: 1,
		Status:           feed.StatusPublished,
		Releases: []feed.ReleaseNode{
			{Version: "1.0", VersionMajor: 1, Date: 100},
		},
	}
	cat := mustBuild(t, doc)

	if _, err := Select(cat, Request{Name: "stable-only", Restrict: RestrictDev}); !errors.Is(err, errors.ErrCodeNoDevRelease) {
		t.Errorf("Select() error = %v, want code %s", err, errors.ErrCodeNoDevRelease)
	}
}

// A version request that misses must not fall back to "most appropriate".
func TestSelectVersionNotFoundNoFallback(t *testing.T) {
	cat := mustBuild(t, testDoc())

	_, err := Select(cat, Request{Name: "views", Version: "9.9", Restrict: RestrictVersion})
	if !errors.Is(err, errors.ErrCodeVersionNotFound) {
		t.Fatalf("Select() error = %v, want code %s", err, errors.ErrCodeVersionNotFound)
	}
}

func TestSelectSupportedMajorFallback(t *testing.T) {
	doc := &feed.Document{
		ShortName:        "legacy",
		RecommendedMajor: 4, // no releases on this line
		SupportedMajors:  []int{3, 2},
		Status:           feed.StatusPublished,
		Releases: []feed.ReleaseNode{
			{Version: "2.0", VersionMajor: 2, Date: 100},
			{Version: "3.1", VersionMajor: 3, Date: 200},
		},
	}
	cat := mustBuild(t, doc)

	rel, err := Select(cat, Request{Name: "legacy"})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	// Supported majors are tried in document-field order: 3 before 2.
	if rel.Version != "3.1" {
		t.Errorf("Select() = %s, want 3.1", rel.Version)
	}
}

func TestSelectOnlyDevFallsThroughToNoStable(t *testing.T) {
	doc := &feed.Document{
		ShortName:        "devonly",
		RecommendedMajor: 9,
		SupportedMajors:  []int{8},
		Status:           feed.StatusPublished,
		Releases: []feed.ReleaseNode{
			{Version: "5.0-dev", VersionMajor: 5, VersionExtra: "dev", Date: 100},
		},
	}
	cat := mustBuild(t, doc)

	if _, err := Select(cat, Request{Name: "devonly"}); !errors.Is(err, errors.ErrCodeNoStableRelease) {
		t.Errorf("Select() error = %v, want code %s", err, errors.ErrCodeNoStableRelease)
	}
}

func TestSelectEmptyCatalog(t *testing.T) {
	doc := &feed.Document{ShortName: "empty", Status: feed.StatusPublished}
	cat := mustBuild(t, doc)

	if _, err := Select(cat, Request{Name: "empty"}); !errors.Is(err, errors.ErrCodeNoStableRelease) {
		t.Errorf("Select() error = %v, want code %s", err, errors.ErrCodeNoStableRelease)
	}
}

// The tie-break is document order, never date: an older stable release that
// appears first in the feed beats a newer one.
func TestSelectTieBreakDocumentOrder(t *testing.T) {
	doc := &feed.Document{
		ShortName:        "ordered",
		RecommendedMajor: 1,
		Status:           feed.StatusPublished,
		Releases: []feed.ReleaseNode{
			{Version: "1.1", VersionMajor: 1, Date: 100},
			{Version: "1.2", VersionMajor: 1, Date: 900},
		},
	}
	cat := mustBuild(t, doc)

	rel, err := Select(cat, Request{Name: "ordered"})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if rel.Version != "1.1" {
		t.Errorf("Select() = %s, want 1.1 (first in document order)", rel.Version)
	}
}

func TestSelectStablePreferredOverDev(t *testing.T) {
	doc := &feed.Document{
		ShortName:        "mixed",
		RecommendedMajor: 2,
		Status:           feed.StatusPublished,
		Releases: []feed.ReleaseNode{
			{Version: "2.3-dev", VersionMajor: 2, VersionExtra: "dev", Date: 900},
			{Version: "2.2", VersionMajor: 2, Date: 100},
		},
	}
	cat := mustBuild(t, doc)

	rel, err := Select(cat, Request{Name: "mixed"})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if rel.Version != "2.2" {
		t.Errorf("Select() = %s, want stable 2.2 over newer dev", rel.Version)
	}
}
