package paramfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain token", input: "--output", expected: "--output"},
		{name: "path with separators", input: "bazel-out/bin/app.jar", expected: "bazel-out/bin/app.jar"},
		{name: "label with sentinel", input: "@ext//pkg:a", expected: "@ext//pkg:a"},
		{name: "comma-joined pair", input: "pathA,@ext//pkg:a", expected: "pathA,@ext//pkg:a"},
		{name: "embedded space", input: "a b", expected: "'a b'"},
		{name: "embedded single quote", input: "it's", expected: `'it'\''s'`},
		{name: "empty argument", input: "", expected: "''"},
		{name: "shell metacharacters", input: "$(rm -rf)", expected: "'$(rm -rf)'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Quote(tc.input))
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []string{"--output", "out dir/out.txt", "--inputs"})
	require.NoError(t, err)

	assert.Equal(t, "--output\n'out dir/out.txt'\n--inputs\n", buf.String())
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "check.params")

	require.NoError(t, WriteFile(path, []string{"--output", "x"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "--output\nx\n", string(content))
}
