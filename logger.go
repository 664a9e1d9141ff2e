package sketch

import (
	"log/slog"

	"github.com/gogpu/sketch/internal/logging"
)

// SetLogger configures the logger for sketch and all its sub-packages.
// By default, sketch produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by sketch:
//   - [slog.LevelDebug]: mode fallbacks, ignored calls, dropped surface errors
//   - [slog.LevelInfo]: frame loop start and stop
//   - [slog.LevelWarn]: image load failures, dropped frames
//
// Example:
//
//	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by sketch.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
