package cli

import (
	"strings"
	"testing"

	"github.com/relwatch/relwatch/pkg/release"
)

func TestRenderCandidates(t *testing.T) {
	releases := []*release.Release{
		{Version: "2.2", Major: 2, Date: 400, Tags: []release.Tag{release.TagRecommended, release.TagSecurity}},
		{Version: "1.2", Major: 1, Date: 300, Tags: []release.Tag{release.TagSupported}},
		{Version: "1.0", Major: 1, Date: 200, Tags: []release.Tag{release.TagInstalled}},
	}

	out := renderCandidates(releases)

	for _, want := range []string{"Version", "Date", "Status", "2.2", "1.2", "1.0", "Recommended", "Installed"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderCandidates() missing %q", want)
		}
	}
}

func TestRenderCandidatesEmpty(t *testing.T) {
	out := renderCandidates(nil)
	if !strings.Contains(out, "Version") {
		t.Error("renderCandidates() should still render headers")
	}
}

func TestTagNames(t *testing.T) {
	tests := []struct {
		name string
		tags []release.Tag
		want string
	}{
		{"none", nil, ""},
		{"single", []release.Tag{release.TagSecurity}, "Security"},
		{"ordered", []release.Tag{release.TagSupported, release.TagInstalled}, "Supported, Installed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tagNames(tt.tags); got != tt.want {
				t.Errorf("tagNames() = %q, want %q", got, tt.want)
			}
		})
	}
}
