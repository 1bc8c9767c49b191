// Package store persists the pet list to a single named file.
//
// Two backends are available. The jsonl backend writes one JSON object per
// line and replaces the file atomically on save. The sqlite backend keeps the
// pets in a SQLite database file. Both load the whole list at once and save
// the whole list at once.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

// Open returns the Store for backend. Pets it loads are validated against r.
func Open(backend string, r types.AgeRange) (types.Store, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	switch backend {
	case types.BackendJSONL:
		return &JSONLStore{limits: r}, nil
	case types.BackendSQLite:
		return &SQLiteStore{limits: r}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// ensureFile creates path, and its parent directory, as an empty file when
// it does not exist. It reports whether the file was created.
func ensureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("%w: stat %s: %w", types.ErrLoad, path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("%w: create directory %s: %w", types.ErrLoad, dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("%w: create %s: %w", types.ErrLoad, path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("%w: close %s: %w", types.ErrLoad, path, err)
	}
	return true, nil
}
