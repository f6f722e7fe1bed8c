package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// NewLogger returns a logger that writes to a file in the temp folder when
// debug is on, and discards everything otherwise. The terminal belongs to
// bubbletea, nothing can be logged there.
func NewLogger(debug bool) (*slog.Logger, io.Closer) {
	if !debug {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}
	path := filepath.Join(os.TempDir(), "blockfall-debug.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}
	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})), file
}
