package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Hues follow the canonical prompt colours so shrinky's own
// messages look like the segments it renders.
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#7BD88F"} // green
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FC618D"} // red
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#78DCE8"} // cyan/blue
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#939293"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#9E7700", Dark: "#FCE566"} // yellow, as in ps1
)
