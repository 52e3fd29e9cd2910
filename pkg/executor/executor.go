package executor

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/gdot/pkg/logging"
	"github.com/arthur-debert/gdot/pkg/types"
)

// Runner executes commands through os/exec
type Runner struct{}

// NewRunner creates the production command runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes name with args and returns its stdout. Stderr is discarded:
// whatever git or python complain about must not leak into a prompt.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.Bytes(), err
}

// Output runs a command and returns its trimmed stdout, or "" when the
// program is missing, exits non-zero or prints nothing.
func Output(ctx context.Context, runner types.CommandRunner, name string, args ...string) string {
	logger := logging.GetLogger("executor")
	logging.LogCommand(name, args)

	out, err := runner.Run(ctx, name, args...)
	if err != nil {
		logger.Debug().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Msg("Command produced no usable output")
		return ""
	}

	return strings.TrimSpace(string(out))
}
