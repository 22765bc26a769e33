package app

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// RunLogger writes progress lines to the console writer and, when a log
// directory is configured, tees them into a gzipped per-run log file.
// Counters are atomic so a parallelized loader would not need to change the
// call sites.
type RunLogger struct {
	file     *os.File
	gzWriter *gzip.Writer
	logger   *log.Logger
	start    time.Time

	loaded  int64
	skipped int64
	failed  int64
}

// NewRunLogger creates a run logger writing to console. An empty logDir gives
// a console-only logger, otherwise lines are also written to a gzipped log
// file under logDir.
func NewRunLogger(console io.Writer, logDir string) (*RunLogger, error) {
	rl := &RunLogger{start: time.Now()}

	w := console
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		name := fmt.Sprintf("stats_run_%s.log.gz", rl.start.Format("2006-01-02_15-04-05"))
		file, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}

		rl.file = file
		rl.gzWriter = gzip.NewWriter(file)
		w = io.MultiWriter(console, rl.gzWriter)
	}
	rl.logger = log.New(w, "", log.Ldate|log.Ltime)

	return rl, nil
}

// Logf writes a formatted line to the log.
func (rl *RunLogger) Logf(format string, args ...any) {
	rl.logger.Printf(format, args...)
}

// FileLoaded records a successfully loaded file.
func (rl *RunLogger) FileLoaded() {
	atomic.AddInt64(&rl.loaded, 1)
}

// FileSkipped records a file that parsed to a null document.
func (rl *RunLogger) FileSkipped() {
	atomic.AddInt64(&rl.skipped, 1)
}

// FileFailed records and logs a file that could not be read or parsed.
func (rl *RunLogger) FileFailed(path string, err error) {
	atomic.AddInt64(&rl.failed, 1)
	rl.Logf("Error processing %s: %v", path, err)
}

// Counts returns the loaded, skipped and failed file counts so far.
func (rl *RunLogger) Counts() (loaded, skipped, failed int64) {
	return atomic.LoadInt64(&rl.loaded),
		atomic.LoadInt64(&rl.skipped),
		atomic.LoadInt64(&rl.failed)
}

// Close writes the run summary and closes the log file if one is open.
func (rl *RunLogger) Close() error {
	loaded, skipped, failed := rl.Counts()
	rl.Logf("Run summary: %d loaded, %d skipped, %d failed in %v",
		loaded, skipped, failed, time.Since(rl.start).Round(time.Millisecond))

	if rl.gzWriter != nil {
		if err := rl.gzWriter.Close(); err != nil {
			return fmt.Errorf("failed to close gzip writer: %w", err)
		}
	}
	if rl.file != nil {
		return rl.file.Close()
	}
	return nil
}
