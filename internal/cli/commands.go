package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gdot/internal/version"
	"github.com/arthur-debert/gdot/pkg/config"
	"github.com/arthur-debert/gdot/pkg/dispatcher"
	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRenderCmd exposes a dispatcher command. Flag parsing stays with the
// dispatcher: its -<letter><value> grammar is not POSIX.
func newRenderCmd(deps Deps, def *dispatcher.CommandDef) *cobra.Command {
	return &cobra.Command{
		Use:                string(def.Name) + " [-<flag><value>...]",
		Short:              dispatcher.Summary(def),
		Long:               strings.TrimSpace(def.Doc),
		GroupID:            groupRender,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.loadConfig()
			if err != nil {
				// A broken config file must not take the prompt down with it
				log.Warn().Str("error", errors.Message(err)).Msg(MsgConfigFallback)
				cfg = config.Default()
			}
			env := dispatcher.Env{
				FS:     deps.FS,
				Runner: deps.Runner,
				Home:   deps.Home,
				Config: cfg,
				Getenv: deps.Getenv,
			}
			err = dispatcher.Run(cmd.Context(), def, args, env, cmd.OutOrStdout())
			if err != nil {
				log.Debug().
					Str("code", string(errors.GetErrorCode(err))).
					Fields(errors.GetErrorDetails(err)).
					Msg("Render failed")
			}
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprint(out, style.Muted(fmt.Sprintf(MsgCommitFormat, version.Commit)))
			_, _ = fmt.Fprint(out, style.Muted(fmt.Sprintf(MsgBuiltFormat, version.Date)))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return errors.New(errors.ErrInternal, "help command not found")
		},
	}
}

func newConfigCmd(deps Deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.loadConfig()
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{config.FormatTOML, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newGenConfigCmd(deps Deps) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			log.Info().Str("path", deps.ConfigFile).Msg("Writing configuration file")
			if err := config.WriteConfigFile(deps.FS, deps.ConfigFile); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), style.Success(fmt.Sprintf(MsgConfigWritten, style.Path(deps.ConfigFile))))
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
