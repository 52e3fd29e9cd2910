package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logName is relative to the XDG state home.
const logName = "gdot/shrinky.log"

var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
	zerolog.TraceLevel,
}

// SetupLogger configures the global logger for a -v count.
//
// Console output goes to stderr so stdout only ever carries rendered
// fragments. The log file is opened only for verbose runs: shrinky runs on
// every prompt draw and stays off the disk otherwise.
func SetupLogger(verbosity int) {
	setupLogger(verbosity, os.Stderr)
}

// Level maps a -v count to a zerolog level. Counts past the table clamp to trace.
func Level(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		return zerolog.TraceLevel
	}
	return levels[verbosity]
}

func setupLogger(verbosity int, console io.Writer) {
	zerolog.SetGlobalLevel(Level(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}}

	var (
		path    string
		openErr error
	)
	if verbosity > 0 {
		var f *os.File
		if path, f, openErr = openLogFile(); openErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if openErr != nil {
		log.Warn().Err(openErr).Msg("Log file unavailable, logging to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath is where verbose runs append their log
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, logName)
}

// openLogFile creates the state directory as needed and opens the log for append.
func openLogFile() (string, *os.File, error) {
	path, err := xdg.StateFile(logName)
	if err != nil {
		return "", nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return path, nil, err
	}
	return path, f, nil
}

// LogCommand records a subprocess about to be spawned
func LogCommand(cmd string, args []string) {
	log.Debug().Str("command", cmd).Strs("args", args).Msg("Executing command")
}

// LogOperationStart logs the start of an operation. The returned func logs
// its completion along with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
