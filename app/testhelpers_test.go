package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeStatsFile creates root/world/stats/<name> with the given content and
// returns the written path.
func writeStatsFile(t *testing.T, root, world, name, content string) string {
	t.Helper()

	dir := filepath.Join(root, world, "stats")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create stats dir: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write stats file: %v", err)
	}
	return path
}

// writeFile creates a file at an arbitrary location under root.
func writeFile(t *testing.T, root string, parts []string, content string) string {
	t.Helper()

	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// silentLogger returns a run logger that discards all output.
func silentLogger(t *testing.T) *RunLogger {
	t.Helper()

	rl, err := NewRunLogger(io.Discard, "")
	if err != nil {
		t.Fatalf("failed to create run logger: %v", err)
	}
	return rl
}
