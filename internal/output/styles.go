package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: app names, paths, identities.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "generated" and "signed" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "unsigned" status.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "removed" status.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "failed" status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Artifact status constants.
const (
	StatusGenerated = "generated"
	StatusCopied    = "copied"
	StatusRemoved   = "removed"
	StatusSigned    = "signed"
	StatusUnsigned  = "unsigned"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a given artifact status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusGenerated, StatusCopied, StatusSigned:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUnsigned:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across artifact lines.
const minPathColumnWidth = 48

// FormatArtifactLine renders a path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatArtifactLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatBuildSummary renders the final line of a build.
func FormatBuildSummary(appName, platform string, signed *bool) string {
	msg := fmt.Sprintf("built %s for %s", StyleNoun.Render(appName), platform)
	if signed != nil {
		if *signed {
			msg += " (" + StatusStyle(StatusSigned).Render(StatusSigned) + ")"
		} else {
			msg += " (" + StatusStyle(StatusUnsigned).Render(StatusUnsigned) + ")"
		}
	}
	return FormatCheckmark(StyleSummary.Render(msg))
}
