// Package logging builds the slog logger used for --verbose tracing.
//
// Tracing goes to stderr through a tint handler, with color disabled when
// stderr is not a terminal (e.g. when piped into a file). Without
// --verbose the logger discards everything, keeping stderr reserved for
// the per-item diagnostic lines that are part of the CLI contract.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler creates a tint-backed slog handler writing to stderr
// at the given level. Colors are only emitted when stderr is a TTY.
func NewTerminalHandler(level slog.Level) slog.Handler {
	w := os.Stderr
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})
}

// NewLogger returns the logger for one CLI invocation. Verbose mode
// enables debug-level tracing; otherwise all records are discarded.
func NewLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(NewTerminalHandler(slog.LevelDebug))
}
