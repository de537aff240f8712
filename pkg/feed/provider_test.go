package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/relwatch/relwatch/pkg/errors"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirProviderGet(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "views.json", `{
		"title": "Views",
		"short_name": "views",
		"recommended_major": 2,
		"supported_majors": [1, 2],
		"project_status": "published",
		"releases": [
			{"version": "2.1", "version_major": 2, "date": 300},
			{"version": "2.0-dev", "version_major": 2, "version_extra": "dev", "date": 200}
		]
	}`)

	p := NewDirProvider(dir)
	doc, err := p.Get(context.Background(), "views")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if doc.Title != "Views" {
		t.Errorf("Title = %q, want %q", doc.Title, "Views")
	}
	if doc.RecommendedMajor != 2 {
		t.Errorf("RecommendedMajor = %d, want 2", doc.RecommendedMajor)
	}
	if len(doc.Releases) != 2 {
		t.Fatalf("len(Releases) = %d, want 2", len(doc.Releases))
	}
	// Document order must survive decoding.
	if doc.Releases[0].Version != "2.1" || doc.Releases[1].Version != "2.0-dev" {
		t.Errorf("release order = %s, %s; want 2.1, 2.0-dev", doc.Releases[0].Version, doc.Releases[1].Version)
	}
	if doc.Releases[1].VersionExtra != "dev" {
		t.Errorf("VersionExtra = %q, want %q", doc.Releases[1].VersionExtra, "dev")
	}
}

func TestDirProviderShortNameDefault(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "token.json", `{"project_status": "published"}`)

	doc, err := NewDirProvider(dir).Get(context.Background(), "token")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if doc.ShortName != "token" {
		t.Errorf("ShortName = %q, want %q", doc.ShortName, "token")
	}
}

func TestDirProviderNotFound(t *testing.T) {
	p := NewDirProvider(t.TempDir())

	_, err := p.Get(context.Background(), "missing")
	if !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("Get() error = %v, want code %s", err, errors.ErrCodeProjectNotFound)
	}
}

func TestDirProviderInvalidName(t *testing.T) {
	p := NewDirProvider(t.TempDir())

	tests := []string{"", "../etc/passwd", "a/b", "a\\b"}
	for _, name := range tests {
		if _, err := p.Get(context.Background(), name); !errors.Is(err, errors.ErrCodeInvalidProject) {
			t.Errorf("Get(%q) error = %v, want code %s", name, err, errors.ErrCodeInvalidProject)
		}
	}
}

func TestDirProviderBadJSON(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "broken.json", `{not json`)

	_, err := NewDirProvider(dir).Get(context.Background(), "broken")
	if !errors.Is(err, errors.ErrCodeFeedError) {
		t.Errorf("Get() error = %v, want code %s", err, errors.ErrCodeFeedError)
	}
}

func TestDirProviderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirProvider(t.TempDir()).Get(ctx, "views")
	if err == nil {
		t.Error("Get() with canceled context should fail")
	}
}

func TestDocumentName(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"ShortName", Document{ShortName: "views", Title: "Views"}, "views"},
		{"TitleFallback", Document{Title: "Views"}, "Views"},
		{"Empty", Document{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
