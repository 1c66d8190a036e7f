package main

import (
	"io"
	"log/slog"
)

// newLogger creates the application logger, writing to w
// (stderr, to keep stdout for the command output).
// The "error" key is shortened to "err".
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
