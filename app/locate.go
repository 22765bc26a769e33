package app

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
)

// LocateStatsFiles walks the tree under root and returns every file matching
// pattern whose direct parent directory is named statsDir, both compared
// case-insensitively. With limit > 0 the walk stops after limit matches, so
// the result is a strict prefix of the unrestricted sequence.
//
// A root that cannot be read is the only fatal condition. Errors further down
// the tree are logged and the affected subtree is skipped.
func LocateStatsFiles(root, pattern, statsDir string, limit int) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %s: %w", root, err)
	}

	loweredPattern := strings.ToLower(pattern)

	var paths []string
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return fmt.Errorf("cannot read root directory %s: %w", absRoot, err)
			}
			log.Printf("Error reading %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		matched, err := filepath.Match(loweredPattern, strings.ToLower(d.Name()))
		if err != nil {
			return fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		if !matched {
			return nil
		}
		if !strings.EqualFold(filepath.Base(filepath.Dir(path)), statsDir) {
			return nil
		}

		paths = append(paths, path)
		if limit > 0 && len(paths) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return paths, nil
}
