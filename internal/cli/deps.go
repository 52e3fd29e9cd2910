package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/gdot/pkg/config"
	"github.com/arthur-debert/gdot/pkg/executor"
	"github.com/arthur-debert/gdot/pkg/filesystem"
	"github.com/arthur-debert/gdot/pkg/paths"
	"github.com/arthur-debert/gdot/pkg/types"
)

//go:embed topics/*.md
var embeddedTopics embed.FS

// Deps is everything the commands reach outside the process for
type Deps struct {
	FS     types.FS
	Runner types.CommandRunner
	Home   string
	Getenv func(string) string

	// LoadConfig returns the effective configuration
	LoadConfig func() (*config.Config, error)

	// ConfigFile is where gen-config --write writes
	ConfigFile string

	// Topics holds the help topic files, the embedded ones when nil
	Topics fs.FS

	// Interactive enables rich rendering of help topics
	Interactive bool
}

// DefaultDeps wires the real filesystem, processes and environment
func DefaultDeps() Deps {
	return Deps{
		FS:          filesystem.NewOS(),
		Runner:      executor.NewRunner(),
		Home:        paths.HomeDir(),
		Getenv:      os.Getenv,
		LoadConfig:  config.Load,
		ConfigFile:  paths.ConfigFile(),
		Interactive: isTerminal(),
	}
}

func (d Deps) topics() fs.FS {
	if d.Topics != nil {
		return d.Topics
	}
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}

func (d Deps) loadConfig() (*config.Config, error) {
	if d.LoadConfig == nil {
		return config.Default(), nil
	}
	return d.LoadConfig()
}
