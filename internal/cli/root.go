package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gdot/internal/version"
	"github.com/arthur-debert/gdot/pkg/cobrax/topics"
	"github.com/arthur-debert/gdot/pkg/dispatcher"
	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/logging"
	"github.com/arthur-debert/gdot/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	groupRender = "render"
	groupMisc   = "misc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(deps Deps) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "shrinky",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Global flags come before the command name, everything after it
		// belongs to the command
		TraverseChildren: true,
		Args:             cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return errors.New(errors.ErrUsage, MsgNoCommand)
			}
			return errors.Newf(errors.ErrUnknownCommand, MsgUnknownCommand, args[0]).
				WithDetail("command", args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupRender,
		Title: MsgGroupRender,
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupMisc,
		Title: MsgGroupMisc,
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	for _, name := range dispatcher.Names() {
		def, _ := dispatcher.Lookup(name)
		rootCmd.AddCommand(newRenderCmd(deps, def))
	}
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newConfigCmd(deps))
	rootCmd.AddCommand(newGenConfigCmd(deps))

	// Topic-based help system
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if deps.Interactive {
		renderer = topics.NewGlamourRenderer()
	}
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
		GroupID:    groupMisc,
		Heading:    style.Heading,
	}
	if _, err := topics.InitializeWithOptions(rootCmd, deps.topics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// Execute runs root with args (without the program name).
//
// Root flags are parsed before cobra resolves the command, so an unknown
// command followed by render flags or --help would fail on those flags or
// print the root help. The command name is checked first instead.
func Execute(root *cobra.Command, args []string) error {
	if name, ok := commandName(args); ok && !isCommand(root, name) {
		return errors.Newf(errors.ErrUnknownCommand, MsgUnknownCommand, name).
			WithDetail("command", name)
	}
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	return root.Execute()
}

// commandName is the first positional argument. Root flags take no values.
func commandName(args []string) (string, bool) {
	for _, arg := range args {
		switch {
		case arg == "--":
			return "", false
		case strings.HasPrefix(arg, "-"):
			continue
		}
		return arg, arg != ""
	}
	return "", false
}

func isCommand(root *cobra.Command, name string) bool {
	switch name {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
