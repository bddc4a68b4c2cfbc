package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/onecheck/internal/artifact"
	"github.com/vk/onecheck/internal/config"
	"github.com/vk/onecheck/internal/ctxlog"
	"github.com/vk/onecheck/internal/toolchain"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. It loads the build
// manifest through the given loader and returns a fully initialized App with
// its own isolated logger. A failure to load the manifest is a fatal startup
// error and panics; the CLI edge recovers it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load build manifest: %w", err))
	}
	logger.Debug("Build manifest loaded and translated into unified model.",
		"target_count", len(model.Targets))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// buildToolchain materializes the manifest's toolchain declaration. Missing
// tool paths become nil artifacts, which the check-action builder treats as
// the degraded, diagnosable state.
func (a *App) buildToolchain() (toolchain.Provider, error) {
	decl := a.model.Toolchain
	if decl == nil {
		return nil, fmt.Errorf("manifest declares targets to check but no toolchain block")
	}
	var checker, allowlist *artifact.Artifact
	if decl.ToolPath != "" {
		checker = artifact.New(decl.ToolPath)
	}
	if decl.AllowlistPath != "" {
		allowlist = artifact.New(decl.AllowlistPath)
	}
	return toolchain.New(decl.Label, checker, allowlist), nil
}
