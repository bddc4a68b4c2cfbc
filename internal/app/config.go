package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string
	OutDir       string
	LogFormat    string
	LogLevel     string
	DryRun       bool
}

// NewConfig validates a Config and applies defaults. It is the single
// construction point for app configuration, whether it comes from the CLI
// or from a test.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, fmt.Errorf("manifest path is required")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}
