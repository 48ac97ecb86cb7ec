package logging

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Prefix tags every text log line so launcher output is distinguishable
// from sshd's own output in the container log.
const Prefix = "forage-sshd"

// Logger is the process-wide structured logger.
var Logger = slog.New(newTextHandler(os.Stderr, false))

func newTextHandler(w io.Writer, verbose bool) slog.Handler {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// Setup configures the global logger. A nil writer means stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	if jsonOutput {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = newTextHandler(w, verbose)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
