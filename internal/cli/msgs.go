package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compact shell prompt and tmux status renderer"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigLong      = "Print the configuration shrinky runs with: built-in defaults, overridden by the user file, overridden by SHRINKY_<SECTION>__<KEY> environment variables."
	MsgGenConfigShort  = "Generate a commented configuration file"
	MsgGenConfigLong   = "Output the default configuration with every value commented out, or write it to the user configuration file with --write. An existing file is never overwritten."

	// Group titles
	MsgGroupRender = "RENDERERS:"
	MsgGroupMisc   = "MISC:"

	// Status messages
	MsgVersionFormat  = "shrinky version %s\n"
	MsgCommitFormat   = "  commit: %s\n"
	MsgBuiltFormat    = "  built:  %s\n"
	MsgConfigWritten  = "Wrote %s"
	MsgNoCommand      = "No command provided"
	MsgUnknownCommand = "Unknown command '%s'"
	MsgConfigFallback = "Configuration unusable, rendering with defaults"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (toml, yaml)"
	MsgFlagWrite   = "Write to the configuration file instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")
)
