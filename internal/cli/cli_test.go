package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ManifestPathSources(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "long flag", args: []string{"-manifest", "build.hcl"}},
		{name: "short flag", args: []string{"-m", "build.hcl"}},
		{name: "positional argument", args: []string{"build.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)
			require.NoError(t, err)
			require.False(t, shouldExit)
			assert.Equal(t, "build.hcl", cfg.ManifestPath)
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"build.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DryRun)
}

func TestParse_AllOptions(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-out-dir", "build-out",
		"-dry-run",
		"-log-format", "JSON",
		"-log-level", "DEBUG",
		"build.hcl",
	}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "build-out", cfg.OutDir)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "json", cfg.LogFormat, "log format is case-insensitive")
	assert.Equal(t, "debug", cfg.LogLevel, "log level is case-insensitive")
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "bad log format", args: []string{"-log-format", "xml", "build.hcl"}},
		{name: "bad log level", args: []string{"-log-level", "loud", "build.hcl"}},
		{name: "unknown flag", args: []string{"-bogus", "build.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "CLI errors must carry an exit code")
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
