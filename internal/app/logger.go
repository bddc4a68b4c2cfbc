package app

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the app's isolated logger from its validated Config. The
// global default logger is never touched, so concurrent App instances (the
// test harness runs many) cannot observe each other's output.
//
// NewConfig and the CLI both vet the format and level strings before they
// get here; an unknown level at this point is a wiring defect, so it panics
// rather than silently downgrading to info.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		panic(fmt.Sprintf("app: unvalidated log level %q", cfg.LogLevel))
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
