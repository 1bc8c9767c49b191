package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps pets in a SQLite database file. Row order is kept in the
// position column.
type SQLiteStore struct {
	limits types.AgeRange
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return db, nil
}

// Load reads every pet from the database at path, ordered by position.
func (s *SQLiteStore) Load(path string) ([]*types.Pet, error) {
	created, err := ensureFile(path)
	if err != nil {
		return nil, err
	}
	if created {
		slog.Debug("created empty pet file", "path", path, "backend", types.BackendSQLite)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrLoad, path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT pet_id, name, age FROM pets ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", types.ErrLoad, path, err)
	}
	defer rows.Close()

	pets := []*types.Pet{}
	for rows.Next() {
		var (
			petID, name string
			age         int
		)
		if err := rows.Scan(&petID, &name, &age); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", types.ErrLoad, path, err)
		}
		pet, err := types.RestorePet(petID, name, age, s.limits)
		if err != nil {
			return nil, fmt.Errorf("%w: %s pet %s: %w", types.ErrLoad, path, petID, err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", types.ErrLoad, path, err)
	}
	slog.Debug("loaded pets", "path", path, "count", len(pets), "backend", types.BackendSQLite)
	return pets, nil
}

// Save replaces every row in the database at path with pets in a single
// transaction.
func (s *SQLiteStore) Save(path string, pets []*types.Pet) error {
	db, err := openDB(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pets`); err != nil {
		return fmt.Errorf("clearing pets: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO pets (pet_id, position, name, age) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pets {
		if _, err := stmt.Exec(p.ID(), i, p.Name(), p.Age()); err != nil {
			return fmt.Errorf("inserting pet %s: %w", p.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	slog.Debug("saved pets", "path", path, "count", len(pets), "backend", types.BackendSQLite)
	return nil
}
