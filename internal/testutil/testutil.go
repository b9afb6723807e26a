// Package testutil provides testing utilities for tracker tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TaskFile returns a path for a task file inside a fresh temporary
// directory. The file does not exist yet, matching a first run.
func TaskFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.json")
}

// WriteTaskFile writes raw document content to the given path, creating
// parent directories as needed.
func WriteTaskFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write task file %s: %v", path, err)
	}
}

// ReadTaskFile reads the raw contents of a task file.
func ReadTaskFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read task file %s: %v", path, err)
	}
	return string(data)
}
