// Package style holds the lipgloss styles shrinky uses for its own
// messages (errors, confirmations, headings). Rendered prompts and tmux
// segments never go through it. lipgloss drops the colours when the output
// is not a terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Stderr renders messages written to stderr. Colour support is detected on
// that stream, so piping stdout does not strip colour from errors.
var Stderr = lipgloss.NewRenderer(os.Stderr)

// Base styles
var (
	HeadingStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = Stderr.NewStyle().
			Foreground(ErrorColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Error renders a message meant for stderr, through the Stderr renderer
func Error(msg string) string {
	return ErrorStyle.Render(msg)
}

// Heading renders a section title
func Heading(s string) string {
	return HeadingStyle.Render(s)
}

// Muted renders secondary information
func Muted(s string) string {
	return MutedStyle.Render(s)
}

// Success renders a confirmation, with a check mark
func Success(s string) string {
	return SuccessStyle.Render("✓") + " " + s
}

// Path renders a file system path
func Path(p string) string {
	return PathStyle.Render(p)
}
