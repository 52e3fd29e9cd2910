package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestStylesWithoutColor(t *testing.T) {
	previous, previousErr := lipgloss.ColorProfile(), Stderr.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	Stderr.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(previous)
		Stderr.SetColorProfile(previousErr)
	})

	assert.Equal(t, "Unknown command 'foo'", Error("Unknown command 'foo'"))
	assert.Equal(t, "Commands:", Heading("Commands:"))
	assert.Equal(t, "commit: abc", Muted("commit: abc"))
	assert.Equal(t, "✓ wrote", Success("wrote"))
	assert.Equal(t, "/etc/gdot", Path("/etc/gdot"))
}

func TestStylesWithColor(t *testing.T) {
	previous := Stderr.ColorProfile()
	Stderr.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { Stderr.SetColorProfile(previous) })

	rendered := Error("boom")
	assert.Contains(t, rendered, "boom")
	assert.Contains(t, rendered, "\x1b[")
}

func TestErrorIgnoresStdoutProfile(t *testing.T) {
	previous, previousErr := lipgloss.ColorProfile(), Stderr.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	Stderr.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(previous)
		Stderr.SetColorProfile(previousErr)
	})

	assert.Contains(t, Error("boom"), "\x1b[", "stderr colour is independent of stdout")
	assert.Equal(t, "wrote", Muted("wrote"))
}
