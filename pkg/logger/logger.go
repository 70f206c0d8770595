// Package logger exposes the process-wide structured logger. Init must run
// before any request handling; content fallbacks and relay failures are
// observable only through these log lines.
package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
