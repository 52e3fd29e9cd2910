package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// EnvConfig points shrinky at an explicit configuration file
	EnvConfig = "SHRINKY_CONFIG"

	// AppDirName is the directory name under the XDG config home
	AppDirName = "gdot"

	// ConfigBaseName is the configuration file name, without extension
	ConfigBaseName = "shrinky"
)

// ConfigDir returns $XDG_CONFIG_HOME/gdot
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the file gen-config writes to: $SHRINKY_CONFIG when
// set, otherwise $XDG_CONFIG_HOME/gdot/shrinky.toml.
func ConfigFile() string {
	if explicit := os.Getenv(EnvConfig); explicit != "" {
		return ResolvePath(explicit, HomeDir())
	}
	return filepath.Join(ConfigDir(), ConfigBaseName+".toml")
}

// ConfigCandidates returns the files the loader looks at, in order. An
// explicit $SHRINKY_CONFIG is the only candidate when set.
func ConfigCandidates() []string {
	if explicit := os.Getenv(EnvConfig); explicit != "" {
		return []string{ResolvePath(explicit, HomeDir())}
	}
	dir := ConfigDir()
	return []string{
		filepath.Join(dir, ConfigBaseName+".toml"),
		filepath.Join(dir, ConfigBaseName+".yaml"),
		filepath.Join(dir, ConfigBaseName+".yml"),
	}
}
