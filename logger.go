package mandelview

import (
	"log/slog"

	"github.com/gogpu/mandelview/internal/logging"
)

// SetLogger configures the logger for mandelview and all its sub-packages.
// By default, mandelview produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to restore the default silent behavior.
//
// Log levels used by mandelview:
//   - [slog.LevelDebug]: resource lifecycle (programs, buffers, files written)
//   - [slog.LevelInfo]: OpenGL context creation, viewer start and stop
//   - [slog.LevelWarn]: non-fatal issues (failed screenshots, missing uniforms)
//
// Example:
//
//	mandelview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by mandelview.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
