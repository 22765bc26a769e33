package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

// LoadOutcome is the per-file result of the loading stage: an entry on
// success, the reason on failure. A nil Entry with a nil Err means the file
// parsed to a JSON null document and contributes nothing.
type LoadOutcome struct {
	Path  string
	Entry *models.LoadedEntry
	Err   error
}

// LoadStatsFile reads and parses one stats file and derives its store labels
// from the surrounding directory layout. Field names in the document are
// matched case-insensitively, which encoding/json already does.
func LoadStatsFile(path string) LoadOutcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadOutcome{Path: path, Err: fmt.Errorf("read failed: %w", err)}
	}

	var doc *models.StatsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return LoadOutcome{Path: path, Err: fmt.Errorf("parse failed: %w", err)}
	}
	if doc == nil {
		return LoadOutcome{Path: path}
	}

	return LoadOutcome{
		Path: path,
		Entry: &models.LoadedEntry{
			World:  worldLabel(path),
			Player: playerID(path),
			Path:   path,
			Doc:    doc,
		},
	}
}

// playerID is the file base name without its extension.
func playerID(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// worldLabel is the name of the directory two levels above the file, i.e. the
// parent of its stats directory. Files too close to the filesystem root fall
// back to "Unknown".
func worldLabel(path string) string {
	world := filepath.Base(filepath.Dir(filepath.Dir(path)))
	if world == "" || world == "." || world == string(filepath.Separator) {
		return "Unknown"
	}
	return world
}

// BuildStore runs the loader over every located path and aggregates the
// successes into a world store. Failures are logged and skipped, never fatal.
// A later file mapping to the same (world, player) key replaces the earlier
// entry completely.
func BuildStore(paths []string, rl *RunLogger) models.WorldStore {
	rl.Logf("Found %d stats files", len(paths))

	store := models.WorldStore{}
	for _, path := range paths {
		out := LoadStatsFile(path)
		switch {
		case out.Err != nil:
			rl.FileFailed(out.Path, out.Err)
		case out.Entry == nil:
			rl.FileSkipped()
		default:
			store.Put(*out.Entry)
			rl.FileLoaded()
		}
	}

	rl.Logf("Loading completed")
	return store
}
