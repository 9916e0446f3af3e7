// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log"
	"log/slog"
)

// Init installs a text logger writing to w as the slog default and points the
// stdlib log package at the same writer. Debug records are kept only when verbose.
func Init(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	log.SetOutput(w)
	return logger
}
