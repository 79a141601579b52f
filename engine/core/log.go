package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/thicket/engine/ui"
)

var coreLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Logger returns the engine logger, for platform and renderer packages.
func Logger() *slog.Logger { return coreLogger }

// SetupLogging installs a text logger at level for the engine and the UI core.
func SetupLogging(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	coreLogger = l
	ui.SetLogger(l.With("pkg", "ui"))
	return l
}
