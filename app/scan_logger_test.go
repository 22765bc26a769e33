package app

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	rl, err := NewRunLogger(&buf, "")
	if err != nil {
		t.Fatalf("NewRunLogger failed: %v", err)
	}

	rl.Logf("hello %s", "there")
	rl.FileLoaded()
	rl.FileFailed("/some/file.json", io.ErrUnexpectedEOF)
	if err := rl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "hello there") {
		t.Errorf("missing logged line:\n%s", out)
	}
	if !strings.Contains(out, "/some/file.json") {
		t.Errorf("missing error line:\n%s", out)
	}
	if !strings.Contains(out, "1 loaded, 0 skipped, 1 failed") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestRunLoggerGzipFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	rl, err := NewRunLogger(io.Discard, logDir)
	if err != nil {
		t.Fatalf("NewRunLogger failed: %v", err)
	}
	rl.Logf("file log line")
	if err := rl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(logDir, "stats_run_*.log.gz"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected exactly one log file, got %v (err %v)", matches, err)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("log file is not valid gzip: %v", err)
	}
	content, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "file log line") {
		t.Errorf("log file missing line:\n%s", content)
	}
	if !strings.Contains(string(content), "Run summary") {
		t.Errorf("log file missing summary:\n%s", content)
	}
}
