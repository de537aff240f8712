package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/relwatch/relwatch/pkg/release"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// Per-tag styles for status rendering.
	tagStyles = map[release.Tag]lipgloss.Style{
		release.TagRecommended: lipgloss.NewStyle().Foreground(colorGreen),
		release.TagSupported:   lipgloss.NewStyle().Foreground(colorGray),
		release.TagDevelopment: lipgloss.NewStyle().Foreground(colorYellow),
		release.TagSecurity:    lipgloss.NewStyle().Foreground(colorRed).Bold(true),
		release.TagInstalled:   lipgloss.NewStyle().Foreground(colorCyan),
	}
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + msg)
}

// formatTags renders a release's status tags as a styled, comma-separated list.
func formatTags(tags []release.Tag) string {
	if len(tags) == 0 {
		return styleDim.Render("—")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		if s, ok := tagStyles[t]; ok {
			parts[i] = s.Render(string(t))
		} else {
			parts[i] = string(t)
		}
	}
	return strings.Join(parts, ", ")
}
