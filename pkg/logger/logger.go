package logger

import (
	"io"
	"log/slog"
	"os"
)

var Log *slog.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler).With("service", "talento-local")
}
