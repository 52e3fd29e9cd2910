package prompt

import (
	"context"
	"strings"

	"github.com/arthur-debert/gdot/pkg/colors"
	"github.com/arthur-debert/gdot/pkg/config"
	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/logging"
	"github.com/arthur-debert/gdot/pkg/paths"
	"github.com/arthur-debert/gdot/pkg/types"
)

// RootUser is the user name that gets the "#" prompt character
const RootUser = "root"

// Options are the ps1 command line values
type Options struct {
	Shell    string
	Owner    string
	User     string
	ExitCode string
	Pwd      string
	Venv     string
	Window   string
}

// Renderer produces PS1 fragments
type Renderer struct {
	FS       types.FS
	Runner   types.CommandRunner
	Home     string
	Settings config.Prompt
}

// Render returns the prompt fragments for opts. The only error is an
// unsupported shell.
func (r *Renderer) Render(ctx context.Context, opts Options) ([]string, error) {
	logger := logging.GetLogger("prompt")

	set, ok := colors.ForShell(opts.Shell)
	if !ok {
		return nil, errors.Newf(errors.ErrUnsupportedShell, "Shell '%s' not supported", opts.Shell).
			WithDetail("shell", opts.Shell).
			WithDetail("supported", colors.Shells())
	}
	logger.Debug().Str("colors", set.String()).Str("user", opts.User).Msg("Rendering prompt")

	var fragments []string
	isRoot := opts.User == RootUser

	switch {
	case r.inContainer():
		fragments = append(fragments, r.Settings.ContainerGlyph)
	case isRoot:
		fragments = append(fragments, r.Settings.RootGlyph)
	}

	if opts.Venv != "" {
		v := r.inspectVenv(ctx, opts.Venv)
		fragments = append(fragments, "("+set.Cyan().Render(v.Label)+" "+set.Blue().Render(v.Version)+") ")
	}

	if opts.Owner != "" && !isRoot && !isOwner(opts.User, opts.Owner) {
		fragments = append(fragments, set.Blue().Render(opts.User)+"@")
	}

	if opts.Pwd != "" {
		folder := paths.ResolvePath(opts.Pwd, r.Home)
		prefix, parts := paths.FolderParts(folder, r.Home)
		short := paths.ShortenPath(prefix, parts, r.Settings.MaxPathSegments)
		fragments = append(fragments, set.Yellow().Render(strings.Join(short, "/")))
	}

	char := ":"
	if isRoot {
		char = " #"
	}
	bit := set.Green()
	if opts.ExitCode != "0" {
		bit = set.Red()
	}
	fragments = append(fragments, bit.Render(char)+" ")

	return fragments, nil
}

func (r *Renderer) inContainer() bool {
	if r.Settings.DockerMarker == "" {
		return false
	}
	_, err := r.FS.Stat(r.Settings.DockerMarker)
	return err == nil
}

func isOwner(user, owners string) bool {
	for _, owner := range strings.Split(owners, ",") {
		if owner == user {
			return true
		}
	}
	return false
}
