// Package testutil provides shared fixtures for dictionary-backed tests.
//
// Typical usage:
//
//	func TestDecode(t *testing.T) {
//	    path := testutil.WriteDict(t, "hello", "world")
//	    store, _ := vocab.Open(path, nil)
//	    ...
//	}
package testutil

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDict writes words, one per line, to a dict.txt in a fresh temporary
// directory and returns its path.
func WriteDict(tb testing.TB, words ...string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "dict.txt")

	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		tb.Fatalf("write dictionary fixture: %v", err)
	}

	return path
}

// MissingDict returns a dictionary path inside a fresh temporary directory
// that does not exist yet.
func MissingDict(tb testing.TB) string {
	tb.Helper()

	return filepath.Join(tb.TempDir(), "dict.txt")
}

// ReadLines returns the non-empty lines of the file at path.
func ReadLines(tb testing.TB, path string) []string {
	tb.Helper()

	f, err := os.Open(path)
	if err != nil {
		tb.Fatalf("open %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}

	return lines
}
