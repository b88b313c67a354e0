package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Keeps test output limited to what the test framework prints.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
