// Package paramfile writes shell-quoted argument files: the auxiliary files
// that deliver a command's arguments when an action's params-file policy
// forces indirection instead of the process argv.
package paramfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// safeRunes are the characters that never need quoting in a shell word.
const safeRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@%_-+=:,./"

// Quote returns the POSIX-shell-quoted form of a single argument. Safe
// tokens pass through unchanged; everything else is wrapped in single
// quotes, with each embedded single quote spelled as the sequence '\''.
func Quote(arg string) string {
	if arg != "" && isSafe(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func isSafe(arg string) bool {
	for _, r := range arg {
		if !strings.ContainsRune(safeRunes, r) {
			return false
		}
	}
	return true
}

// Write emits one quoted argument per line.
func Write(w io.Writer, args []string) error {
	bw := bufio.NewWriter(w)
	for _, arg := range args {
		if _, err := bw.WriteString(Quote(arg)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the quoted arguments to the given path, creating parent
// directories as needed.
func WriteFile(path string, args []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create params file directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create params file: %w", err)
	}
	if err := Write(f, args); err != nil {
		f.Close()
		return fmt.Errorf("failed to write params file %s: %w", path, err)
	}
	return f.Close()
}
