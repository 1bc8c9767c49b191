package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

// petRecord is the on-disk form of a pet, one per JSONL line.
type petRecord struct {
	PetID string `json:"pet_id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
}

// JSONLStore keeps pets in a JSON Lines file.
type JSONLStore struct {
	limits types.AgeRange
}

// Load reads every pet from path in file order. Blank lines are skipped; a
// line that is not a valid pet fails the whole load.
func (s *JSONLStore) Load(path string) ([]*types.Pet, error) {
	created, err := ensureFile(path)
	if err != nil {
		return nil, err
	}
	if created {
		slog.Debug("created empty pet file", "path", path, "backend", types.BackendJSONL)
		return []*types.Pet{}, nil
	}

	records, err := readJSONL(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrLoad, err)
	}

	pets := make([]*types.Pet, 0, len(records))
	for _, raw := range records {
		var rec petRecord
		if err := json.Unmarshal(raw.data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", types.ErrLoad, path, raw.line, err)
		}
		pet, err := types.RestorePet(rec.PetID, rec.Name, rec.Age, s.limits)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", types.ErrLoad, path, raw.line, err)
		}
		pets = append(pets, pet)
	}
	slog.Debug("loaded pets", "path", path, "count", len(pets), "backend", types.BackendJSONL)
	return pets, nil
}

// Save replaces path with pets, one JSON object per line.
func (s *JSONLStore) Save(path string, pets []*types.Pet) error {
	records := make([][]byte, 0, len(pets))
	for _, p := range pets {
		b, err := json.Marshal(petRecord{PetID: p.ID(), Name: p.Name(), Age: p.Age()})
		if err != nil {
			return fmt.Errorf("marshal pet %s: %w", p.ID(), err)
		}
		records = append(records, b)
	}
	if err := writeJSONL(path, records); err != nil {
		return err
	}
	slog.Debug("saved pets", "path", path, "count", len(pets), "backend", types.BackendJSONL)
	return nil
}

// jsonLine is a non-empty line and its 1-based line number.
type jsonLine struct {
	line int
	data []byte
}

// readJSONL returns every non-empty line of path.
func readJSONL(path string) ([]jsonLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []jsonLine
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, jsonLine{line: n, data: cp})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records [][]byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
