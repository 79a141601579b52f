package ui

import (
	"log/slog"
	"os"
)

// uiLogger receives window lifecycle and focus events at Debug level.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		uiLogger = l
	}
}
