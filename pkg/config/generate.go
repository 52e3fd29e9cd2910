package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gdot/pkg/errors"
	"github.com/arthur-debert/gdot/pkg/types"
)

// GenerateConfigContent returns the default configuration with every value
// commented out, ready to be edited by the user
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// WriteConfigFile writes the generated configuration to path. An existing
// file is never overwritten.
func WriteConfigFile(fsys types.FS, path string) error {
	if _, err := fsys.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists, not overwriting", path).
			WithDetail("path", path)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot check %s", path)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [prompt], [tmux]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
