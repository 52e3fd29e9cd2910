package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
		wantFile  bool
	}{
		{"default warn level", 0, zerolog.WarnLevel, false},
		{"info level", 1, zerolog.InfoLevel, true},
		{"debug level", 2, zerolog.DebugLevel, true},
		{"trace level", 3, zerolog.TraceLevel, true},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Cleanup(xdg.Reload)
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()

			var console bytes.Buffer
			setupLogger(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "gdot", "shrinky.log")
			_, err := os.Stat(logPath)
			if tt.wantFile {
				assert.NoError(t, err, "log file should exist at %s", logPath)
			} else {
				assert.True(t, os.IsNotExist(err), "quiet runs must not create %s", logPath)
			}
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		xdg.Reload()
		assert.Equal(t, filepath.Join("/custom/state", "gdot", "shrinky.log"), LogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		t.Setenv("XDG_STATE_HOME", "")
		xdg.Reload()
		got := LogFilePath()
		assert.True(t, filepath.IsAbs(got), "got relative path %s", got)
		assert.True(t, strings.HasSuffix(filepath.ToSlash(got), "gdot/shrinky.log"), got)
	})
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, Level(-1))
	assert.Equal(t, zerolog.WarnLevel, Level(0))
	assert.Equal(t, zerolog.DebugLevel, Level(2))
	assert.Equal(t, zerolog.TraceLevel, Level(9))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("tmux")
	logger.Info().Msg("rendered")

	assert.Contains(t, buf.String(), `"component":"tmux"`)
	assert.Contains(t, buf.String(), "rendered")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("git", []string{"-C", "/src", "branch"})

	output := buf.String()
	assert.Contains(t, output, "git")
	assert.Contains(t, output, "branch")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "render ps1")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
