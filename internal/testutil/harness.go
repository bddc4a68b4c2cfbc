package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/onecheck/internal/app"
	"github.com/vk/onecheck/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an analysis test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
	OutDir string
}

// RunAnalysisTest is a standardized harness for app-level tests: it writes
// the given manifest files into a temp dir, runs the full analysis phase
// over them with params files going to a second temp dir, and captures all
// output.
func RunAnalysisTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	manifestDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(manifestDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	outDir := t.TempDir()

	cfg, err := app.NewConfig(app.Config{
		ManifestPath: manifestDir,
		OutDir:       outDir,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	a := app.NewApp(out, cfg, hcl.NewLoader())
	runErr := a.Run(context.Background())

	return &HarnessResult{
		Output: out.String(),
		Err:    runErr,
		App:    a,
		OutDir: outDir,
	}
}
