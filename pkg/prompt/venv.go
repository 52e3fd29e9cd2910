package prompt

import (
	"bufio"
	"context"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/gdot/pkg/executor"
	"github.com/arthur-debert/gdot/pkg/paths"
)

// MissingVersion is shown when the venv python could not report its version
const MissingVersion = "None"

// VenvDirName is the conventional in-project venv folder; the project
// folder names such venvs
const VenvDirName = ".venv"

var (
	versionRegex = regexp.MustCompile(`(\d+\.\d+)`)
	labelRegex   = regexp.MustCompile(`^\s*PS1="\(([\w-]+).+`)
)

// Venv is what the prompt shows about a python virtual environment
type Venv struct {
	Label   string
	Version string
}

func (r *Renderer) inspectVenv(ctx context.Context, raw string) Venv {
	venv := paths.ResolvePath(raw, r.Home)

	version := ""
	python := filepath.Join(venv, "bin", "python")
	if _, err := r.FS.Stat(python); err == nil {
		version = executor.Output(ctx, r.Runner, python, "--version")
		if m := versionRegex.FindStringSubmatch(version); m != nil {
			version = m[1]
		}
	}
	if version == "" {
		version = MissingVersion
	}

	label := r.activateLabel(filepath.Join(venv, "bin", "activate"))
	if label == "" {
		if filepath.Base(venv) == VenvDirName {
			venv = filepath.Dir(venv)
		}
		label = filepath.Base(venv)
	}

	return Venv{
		Label:   paths.CapText(label, r.Settings.VenvLabelMax),
		Version: paths.CapText(version, r.Settings.VenvVersionMax),
	}
}

// activateLabel returns the prompt name set by the last PS1="(name) ..."
// line of an activate script, or "".
func (r *Renderer) activateLabel(activate string) string {
	f, err := r.FS.Open(activate)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	label := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := labelRegex.FindStringSubmatch(scanner.Text()); m != nil {
			label = m[1]
		}
	}
	return label
}
