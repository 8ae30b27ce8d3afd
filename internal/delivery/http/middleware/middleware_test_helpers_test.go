package middleware

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger that drops everything, keeping test output clean.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
