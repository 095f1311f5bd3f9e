// =============================================================================
// logging.go - Debug Logging
// =============================================================================
//
// Debug tracing (decoded keys, raw mode changes, command dispatch) is
// written with log/slog. Without --debug-log the logger discards
// everything, so the interactive terminal is never disturbed by log lines.
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// openLogger returns the debug logger and a function that closes its
// destination. An empty path yields a logger that discards all records.
func openLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log %s: %w", path, err)
	}
	return newTextLogger(f), f.Close, nil
}

func newTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
