package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/vk/onecheck/internal/ctxlog"
)

// Context returns a context carrying a discard-backed debug logger, for unit
// tests of code that requires a logger in its context.
func Context(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return ctxlog.WithLogger(context.Background(), logger)
}
