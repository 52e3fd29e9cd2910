package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/arthur-debert/gdot/pkg/logging"
)

// Renderer turns a topic's raw file content into terminal output. ext is the
// topic file's extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics verbatim. Used when stdout is not a terminal.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other extensions, and
// any content glamour fails on, fall through unchanged.
type GlamourRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty"...)
	// or a path to a JSON style. Empty or "auto" picks one from the terminal.
	Style string
	// Width wraps at this column when positive.
	Width int
}

func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	switch _, standard := styles.DefaultStyles[r.Style]; {
	case r.Style == "" || r.Style == "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case standard:
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	default:
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err == nil {
		var out string
		if out, err = tr.Render(content); err == nil {
			return out
		}
	}
	logger := logging.GetLogger("topics")
	logger.Debug().Err(err).Msg("glamour failed, printing topic as is")
	return content
}
