// Package log holds the process-wide diagnostic logger.
//
// minigrep owns both standard streams for its results and error reports, so
// nothing is logged below debug level. Diagnostics appear on standard error
// only when MINIGREP_DEBUG is set.
package log

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug logging when set to a non-empty value.
const DebugEnv = "MINIGREP_DEBUG"

// Logger is the global logger instance
var Logger *slog.Logger

// InitLogger initializes the global logger writing to w
func InitLogger(w io.Writer) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelInfo,
	}

	if os.Getenv(DebugEnv) != "" {
		opts.Level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
}

func init() {
	InitLogger(os.Stderr)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
