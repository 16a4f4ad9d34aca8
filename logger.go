package photo

import (
	"log/slog"

	"github.com/zaqy-ramadhan/qoar-photo/internal/logging"
)

// SetLogger configures the logger for photo and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: ignored pointers, skipped exports, outgoing requests
//   - [slog.LevelInfo]: applied edits
//   - [slog.LevelWarn]: soft failures (stroke rasterization, PNG encoding, API errors)
//
// Example:
//
//	photo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
