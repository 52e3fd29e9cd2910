package config

import (
	"github.com/arthur-debert/gdot/pkg/errors"
)

// Config is the effective shrinky configuration
type Config struct {
	Prompt Prompt `koanf:"prompt" toml:"prompt" yaml:"prompt"`
	Tmux   Tmux   `koanf:"tmux" toml:"tmux" yaml:"tmux"`
}

// Prompt holds the ps1 renderer settings
type Prompt struct {
	DockerMarker    string `koanf:"docker_marker" toml:"docker_marker" yaml:"docker_marker"`
	ContainerGlyph  string `koanf:"container_glyph" toml:"container_glyph" yaml:"container_glyph"`
	RootGlyph       string `koanf:"root_glyph" toml:"root_glyph" yaml:"root_glyph"`
	MaxPathSegments int    `koanf:"max_path_segments" toml:"max_path_segments" yaml:"max_path_segments"`
	VenvLabelMax    int    `koanf:"venv_label_max" toml:"venv_label_max" yaml:"venv_label_max"`
	VenvVersionMax  int    `koanf:"venv_version_max" toml:"venv_version_max" yaml:"venv_version_max"`
}

// Tmux holds the tmux status renderer settings
type Tmux struct {
	BranchSpec  string `koanf:"branch_spec" toml:"branch_spec" yaml:"branch_spec"`
	BranchMax   int    `koanf:"branch_max" toml:"branch_max" yaml:"branch_max"`
	ShortMax    int    `koanf:"short_max" toml:"short_max" yaml:"short_max"`
	UptimeMax   int    `koanf:"uptime_max" toml:"uptime_max" yaml:"uptime_max"`
	UptimeColor string `koanf:"uptime_color" toml:"uptime_color" yaml:"uptime_color"`
	UptimeGlyph string `koanf:"uptime_glyph" toml:"uptime_glyph" yaml:"uptime_glyph"`
}

// Validate checks the values a renderer cannot work with
func (c *Config) Validate() error {
	positive := []struct {
		key   string
		value int
	}{
		{"prompt.max_path_segments", c.Prompt.MaxPathSegments},
		{"prompt.venv_label_max", c.Prompt.VenvLabelMax},
		{"prompt.venv_version_max", c.Prompt.VenvVersionMax},
		{"tmux.branch_max", c.Tmux.BranchMax},
		{"tmux.short_max", c.Tmux.ShortMax},
		{"tmux.uptime_max", c.Tmux.UptimeMax},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Newf(errors.ErrConfigValid, "%s must be a positive number, got %d", p.key, p.value).
				WithDetail("key", p.key)
		}
	}
	return nil
}
