// Package logger exposes the process-wide structured logger used by the flow
// engine, middleware and storage client.
package logger

import (
	"log/slog"
	"os"
)

// Log is nil until Init runs; main calls Init before anything logs.
var Log *slog.Logger

// Init installs a JSON slog handler on stdout.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
