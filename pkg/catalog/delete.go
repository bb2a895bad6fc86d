package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Delete removes the conversation log at path, then reclaims any directories
// the removal left empty so project containers and date chains don't linger.
func (c *Catalog) Delete(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound{Path: path}
		}
		return fmt.Errorf("reading metadata for %s: %w", path, err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}

	reclaimEmptyDirs(filepath.Dir(path))

	return nil
}

// reclaimEmptyDirs removes dir if it is empty, then climbs toward the
// filesystem root doing the same. The walk stops before touching the
// projects/sessions backend roots. Best effort throughout: an unreadable,
// non-empty, or unremovable directory halts the walk without reporting.
func reclaimEmptyDirs(dir string) {
	for {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}

		if err := os.Remove(dir); err != nil {
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root.
			return
		}
		switch filepath.Base(parent) {
		case claudeSubdir, codexSubdir:
			return
		}

		dir = parent
	}
}
