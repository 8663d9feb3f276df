// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init installs a text handler on stderr as the default logger. Debug
// records are only emitted when verbose is set.
func Init(verbose bool) {
	slog.SetDefault(New(os.Stderr, verbose))
}

// New builds a logger writing to w.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
