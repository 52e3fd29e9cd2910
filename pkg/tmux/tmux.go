package tmux

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gdot/pkg/config"
	"github.com/arthur-debert/gdot/pkg/executor"
	"github.com/arthur-debert/gdot/pkg/logging"
	"github.com/arthur-debert/gdot/pkg/paths"
	"github.com/arthur-debert/gdot/pkg/types"
)

// Options are the tmux_status and tmux_short command line values
type Options struct {
	BranchSpec string
	Path       string
	Window     string
}

// Renderer produces tmux status segments
type Renderer struct {
	FS       types.FS
	Runner   types.CommandRunner
	Home     string
	Settings config.Tmux
}

// Colored caps text to max and wraps it in tmux style markup for fg. An
// empty fg leaves the text unstyled.
func Colored(text, fg string, max int) string {
	text = paths.CapText(text, max)
	if fg == "" {
		return text
	}
	return fmt.Sprintf("#[fg=%s]%s#[default]", fg, text)
}

// Status returns the branch segment of the repository holding opts.Path,
// then the uptime segment
func (r *Renderer) Status(ctx context.Context, opts Options) ([]string, error) {
	folder := r.folder(opts.Path)
	specs := ParseBranchSpecs(r.branchSpec(opts))
	return []string{
		r.RenderedBranch(ctx, paths.FindSCMRoot(r.FS, folder), specs),
		r.RenderedUptime(ctx),
	}, nil
}

// Short returns the window name for opts.Path
func (r *Renderer) Short(_ context.Context, opts Options) ([]string, error) {
	return []string{r.ShortName(r.folder(opts.Path))}, nil
}

// RenderedBranch shows the checked out branch of dir styled by specs, or
// "" when there is no branch or no clause for it
func (r *Renderer) RenderedBranch(ctx context.Context, dir string, specs *BranchSpecs) string {
	if dir == "" {
		return ""
	}
	branch := executor.Output(ctx, r.Runner, "git", "-C", dir, "branch", "--no-color", "--show-current")
	if branch == "" {
		return ""
	}
	spec := specs.Resolve(branch)
	if spec == nil {
		logger := logging.GetLogger("tmux")
		logger.Debug().Str("branch", branch).Msg("No branch spec applies")
		return ""
	}
	return Colored(branch, spec.Color, r.Settings.BranchMax) + spec.Icon
}

// RenderedUptime shows a compact machine uptime such as "3d 2h", or ""
// when uptime can't be read
func (r *Renderer) RenderedUptime(ctx context.Context) string {
	out := executor.Output(ctx, r.Runner, "uptime")
	_, after, found := strings.Cut(out, "up")
	if !found {
		return ""
	}
	after = strings.TrimSpace(after)
	if after == "" {
		return ""
	}

	bits := UptimeBits(after)
	if len(bits) > 2 {
		bits = bits[:2]
	}
	if len(bits) == 0 {
		return ""
	}
	return Colored(strings.Join(bits, " "), r.Settings.UptimeColor, r.Settings.UptimeMax) + r.Settings.UptimeGlyph
}

// UptimeBits turns what follows "up" in uptime's output into short tokens:
// "2:03" gives "2h" "03m", "23 days" gives "23d". Parsing stops at the
// user count or load average.
func UptimeBits(text string) []string {
	var bits []string
	for _, bit := range strings.Split(text, ",") {
		bit = strings.TrimSpace(bit)
		if bit == "" {
			continue
		}
		if strings.Contains(bit, "user") || strings.Contains(bit, "session") || strings.Contains(bit, "load") {
			break
		}

		if h, m, ok := strings.Cut(bit, ":"); ok {
			bits = append(bits, h+"h", m+"m")
			continue
		}

		n, unit, _ := strings.Cut(bit, " ")
		unit = strings.TrimSpace(unit)
		if n != "" && unit != "" {
			bit = n + firstRune(unit)
		}
		bits = append(bits, bit)
	}
	return bits
}

// ShortName is "~" for home, "repo/dir" for a folder inside a repository,
// and the folder name otherwise
func (r *Renderer) ShortName(folder string) string {
	if r.Home != "" && folder == filepath.Clean(r.Home) {
		return paths.HomeMarker
	}

	name := filepath.Base(folder)
	if root := paths.FindSCMRoot(r.FS, folder); root != "" && root != folder {
		name = filepath.Base(root) + "/" + name
	}
	return paths.CapText(name, r.Settings.ShortMax)
}

func (r *Renderer) branchSpec(opts Options) string {
	if opts.BranchSpec != "" {
		return opts.BranchSpec
	}
	return r.Settings.BranchSpec
}

// folder resolves a -p value to an absolute path
func (r *Renderer) folder(raw string) string {
	folder := paths.ResolvePath(raw, r.Home)
	if abs, err := filepath.Abs(folder); err == nil {
		return abs
	}
	return folder
}

func firstRune(s string) string {
	for _, c := range s {
		return string(c)
	}
	return ""
}
