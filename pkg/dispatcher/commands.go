package dispatcher

import (
	"context"
	"os"

	"github.com/arthur-debert/gdot/pkg/paths"
	"github.com/arthur-debert/gdot/pkg/prompt"
	"github.com/arthur-debert/gdot/pkg/registry"
	"github.com/arthur-debert/gdot/pkg/tmux"
)

// TmuxDelimiter separates tmux status segments
const TmuxDelimiter = "┆"

// commands is static: every entry passes Validate (see TestCommandTable).
var commands = registry.New[*CommandDef]()

func init() {
	for _, def := range []*CommandDef{cleanPathCommand(), ps1Command(), tmuxStatusCommand(), tmuxShortCommand()} {
		registry.MustRegister(commands, string(def.Name), def)
	}
}

// Lookup returns the command registered under name
func Lookup(name string) (*CommandDef, bool) {
	def, err := commands.Get(name)
	if err != nil {
		return nil, false
	}
	return def, true
}

// Names lists the registered commands, sorted
func Names() []string {
	return commands.List()
}

var (
	pathFlag   = FlagSpec{'p', "path", func(o *Options, v string) { o.Path = v }}
	windowFlag = FlagSpec{'w', "window", func(o *Options, v string) { o.Window = v }}
	branchFlag = FlagSpec{'b', "branch_spec", func(o *Options, v string) { o.BranchSpec = v }}
)

func cleanPathCommand() *CommandDef {
	return &CommandDef{
		Name:      CommandCleanPath,
		Flags:     []FlagSpec{pathFlag},
		Delimiter: string(os.PathListSeparator),
		Doc: `
Cleaned up PATH: existing folders only, without duplicates

Example:
  export PATH=$(shrinky clean_path)
  shrinky clean_path -p"$HOME/bin:/usr/bin:/usr/bin"
`,
		Render: func(_ context.Context, env Env, opts Options) ([]string, error) {
			raw := opts.Path
			if raw == "" {
				raw = env.getenv("PATH")
			}
			return paths.CleanList(env.FS, raw, env.Home), nil
		},
	}
}

func ps1Command() *CommandDef {
	return &CommandDef{
		Name: CommandPS1,
		Flags: []FlagSpec{
			{'s', "shell", func(o *Options, v string) { o.Shell = v }},
			{'o', "owner", func(o *Options, v string) { o.Owner = v }},
			{'u', "user", func(o *Options, v string) { o.User = v }},
			{'x', "exit_code", func(o *Options, v string) { o.ExitCode = v }},
			{'p', "pwd", func(o *Options, v string) { o.Pwd = v }},
			{'v', "venv", func(o *Options, v string) { o.Venv = v }},
			windowFlag,
		},
		Doc: `
PS1 minimalistic prompt

Example:
  ps1 -szsh -ozsimic,zoran -p.. -ufoo
`,
		Render: func(ctx context.Context, env Env, opts Options) ([]string, error) {
			r := &prompt.Renderer{
				FS:       env.FS,
				Runner:   env.Runner,
				Home:     env.Home,
				Settings: env.config().Prompt,
			}
			return r.Render(ctx, prompt.Options{
				Shell:    opts.Shell,
				Owner:    opts.Owner,
				User:     opts.User,
				ExitCode: opts.ExitCode,
				Pwd:      opts.Pwd,
				Venv:     opts.Venv,
				Window:   opts.Window,
			})
		},
	}
}

func tmuxRenderer(env Env) *tmux.Renderer {
	return &tmux.Renderer{
		FS:       env.FS,
		Runner:   env.Runner,
		Home:     env.Home,
		Settings: env.config().Tmux,
	}
}

func tmuxOptions(opts Options) tmux.Options {
	return tmux.Options{BranchSpec: opts.BranchSpec, Path: opts.Path, Window: opts.Window}
}

func tmuxStatusCommand() *CommandDef {
	return &CommandDef{
		Name:      CommandTmuxStatus,
		Flags:     []FlagSpec{branchFlag, pathFlag, windowFlag},
		Delimiter: TmuxDelimiter,
		Doc: `
Status for tmux status-right part

Example:
  set -g status-right '#(shrinky tmux_status -p"#{pane_current_path}")'
`,
		Render: func(ctx context.Context, env Env, opts Options) ([]string, error) {
			return tmuxRenderer(env).Status(ctx, tmuxOptions(opts))
		},
	}
}

func tmuxShortCommand() *CommandDef {
	return &CommandDef{
		Name:      CommandTmuxShort,
		Flags:     []FlagSpec{branchFlag, pathFlag, windowFlag},
		Delimiter: TmuxDelimiter,
		Doc: `
Short name to show for a given window

Example:
  setw -g automatic-rename-format '#(shrinky tmux_short -p"#{pane_current_path}")'
`,
		Render: func(ctx context.Context, env Env, opts Options) ([]string, error) {
			return tmuxRenderer(env).Short(ctx, tmuxOptions(opts))
		},
	}
}
