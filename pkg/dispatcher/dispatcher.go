// Package dispatcher maps shrinky command names to their renderers.
// It acts as the entry point from the CLI layer: it parses the compact
// -<letter><value> arguments into Options, runs the renderer and prints the
// non-empty fragments joined by the command's delimiter.
package dispatcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/gdot/pkg/config"
	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/logging"
	"github.com/arthur-debert/gdot/pkg/types"
)

// CommandType is the name of a renderer command
type CommandType string

const (
	CommandCleanPath  CommandType = "clean_path"
	CommandPS1        CommandType = "ps1"
	CommandTmuxStatus CommandType = "tmux_status"
	CommandTmuxShort  CommandType = "tmux_short"
)

// HelpFlag anywhere in a command's arguments prints its documentation
const HelpFlag = "--help"

// Options contains all possible options for renderer commands.
// Each command will use only the fields it needs.
type Options struct {
	// For ps1
	Shell    string
	Owner    string
	User     string
	ExitCode string
	Pwd      string
	Venv     string

	// For tmux_status and tmux_short
	BranchSpec string

	// Common fields
	Path   string
	Window string
}

// NewOptions returns Options holding every flag default
func NewOptions() Options {
	return Options{ExitCode: "0"}
}

// Env carries what renderers need from the outside world
type Env struct {
	FS     types.FS
	Runner types.CommandRunner
	Home   string
	Config *config.Config

	// Getenv reads the environment, os.Getenv when nil
	Getenv func(string) string
}

func (e Env) getenv(key string) string {
	if e.Getenv == nil {
		return os.Getenv(key)
	}
	return e.Getenv(key)
}

func (e Env) config() *config.Config {
	if e.Config == nil {
		return config.Default()
	}
	return e.Config
}

// FlagSpec binds a flag letter to an Options field
type FlagSpec struct {
	Letter rune
	Name   string
	Set    func(*Options, string)
}

// RenderFunc produces the fragments of a command
type RenderFunc func(ctx context.Context, env Env, opts Options) ([]string, error)

// CommandDef describes one renderer command
type CommandDef struct {
	Name      CommandType
	Flags     []FlagSpec
	Delimiter string
	Doc       string
	Render    RenderFunc
}

// Flag returns the flag bound to letter
func (def *CommandDef) Flag(letter rune) (FlagSpec, bool) {
	for _, f := range def.Flags {
		if f.Letter == letter {
			return f, true
		}
	}
	return FlagSpec{}, false
}

// Summary is the first line of the command documentation
func Summary(def *CommandDef) string {
	doc := strings.TrimSpace(def.Doc)
	if doc == "" {
		return "?"
	}
	first, _, _ := strings.Cut(doc, "\n")
	return strings.TrimSpace(first)
}

// Validate checks that def has a renderer and that its flag letters are unique.
func Validate(def *CommandDef) error {
	if def.Render == nil {
		return errors.Newf(errors.ErrInvalidInput, "command '%s' has no renderer", def.Name)
	}
	seen := make(map[rune]string)
	for _, f := range def.Flags {
		if other, dup := seen[f.Letter]; dup {
			return errors.Newf(errors.ErrInvalidInput, "command '%s': flag '%c' bound to both %s and %s",
				def.Name, f.Letter, other, f.Name)
		}
		seen[f.Letter] = f.Name
	}
	return nil
}

// ParseArgs applies -<letter><value> tokens to opts
func ParseArgs(def *CommandDef, args []string, opts *Options) error {
	for _, arg := range args {
		if len(arg) <= 1 || !strings.HasPrefix(arg, "-") {
			return errors.Newf(errors.ErrBadArgument, "Unrecognized argument '%s'", arg).
				WithDetail("command", string(def.Name))
		}

		letter, size := utf8.DecodeRuneInString(arg[1:])
		flag, ok := def.Flag(letter)
		if !ok {
			return errors.Newf(errors.ErrUnknownFlag, "Unknown flag '%c'", letter).
				WithDetail("command", string(def.Name))
		}
		flag.Set(opts, arg[1+size:])
	}
	return nil
}

// Run executes def with the raw command line arguments and prints its output
func Run(ctx context.Context, def *CommandDef, args []string, env Env, stdout io.Writer) (err error) {
	logger := logging.GetLogger("dispatcher")

	for _, arg := range args {
		if arg == HelpFlag {
			_, err := fmt.Fprintf(stdout, "%s\n\n", strings.TrimSpace(def.Doc))
			return err
		}
	}

	opts := NewOptions()
	if err := ParseArgs(def, args, &opts); err != nil {
		return err
	}

	logger.Debug().
		Str("command", string(def.Name)).
		Strs("args", args).
		Msg("Dispatching renderer command")
	done := logging.LogOperationStart(logger, string(def.Name))
	defer done()

	fragments, err := render(ctx, def, env, opts)
	if err != nil {
		return err
	}

	var kept []string
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}

	_, err = fmt.Fprintln(stdout, strings.Join(kept, def.Delimiter))
	return err
}

// render calls the renderer, turning panics and unexpected errors into a
// RenderCrash naming the command
func render(ctx context.Context, def *CommandDef, env Env, opts Options) (fragments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = crashed(def, fmt.Sprint(r)).WithDetail("panic", true)
		}
	}()

	fragments, err = def.Render(ctx, env, opts)
	if err != nil && !errors.IsUsage(err) {
		return nil, crashed(def, errors.Message(err))
	}
	return fragments, err
}

func crashed(def *CommandDef, msg string) *errors.GdotError {
	logger := logging.GetLogger("dispatcher")
	logger.Debug().Str("command", string(def.Name)).Str("error", msg).Msg("Renderer crashed")
	return errors.Newf(errors.ErrRenderCrash, "'%s()' crashed: %s", def.Name, msg).
		WithDetail("command", string(def.Name))
}
