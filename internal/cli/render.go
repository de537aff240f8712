package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/relwatch/relwatch/pkg/release"
)

// renderCandidates renders a filtered candidate list as a bordered table.
// Rows preserve the filter's display order: the major line dominates, with
// newer dates first inside one major.
func renderCandidates(releases []*release.Release) string {
	rows := make([][]string, 0, len(releases))
	for _, r := range releases {
		rows = append(rows, []string{r.Version, r.Time().Format("2006-01-02"), tagNames(r.Tags)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Version", "Date", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(releases) {
				return lipgloss.NewStyle()
			}
			r := releases[row]
			switch {
			case r.HasTag(release.TagSecurity) && col == 2:
				return lipgloss.NewStyle().Foreground(colorRed)
			case r.HasTag(release.TagInstalled):
				return lipgloss.NewStyle().Foreground(colorCyan)
			case r.HasTag(release.TagRecommended):
				return lipgloss.NewStyle().Foreground(colorGreen)
			case r.Dev():
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

// tagNames joins tag names unstyled; per-cell styling happens in StyleFunc.
func tagNames(tags []release.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
