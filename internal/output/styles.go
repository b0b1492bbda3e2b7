package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: tags, versions, repo names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" release status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" release status.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (tags, versions, repo names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Release status constants.
const (
	StatusCreated = "created"
	StatusPlanned = "planned"
	StatusSkipped = "skipped"
)

// StatusStyle returns the lipgloss style for a release status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPlanned:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// IsTTY reports whether stdout is attached to a terminal. Styled and
// spinner output is suppressed when it is not (the CI case).
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatReleaseLine renders a release tag with a color-coded status suffix.
//
// Format: rel:<tag>  <status>
func FormatReleaseLine(tag, status string) string {
	prefix := StyleDim.Render("rel:")
	styledTag := StyleNoun.Render(tag)
	styledStatus := StatusStyle(status).Render(status)
	return prefix + styledTag + "  " + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
