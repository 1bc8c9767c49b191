package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

var backends = []string{types.BackendJSONL, types.BackendSQLite}

func samplePets(t *testing.T) []*types.Pet {
	t.Helper()
	var pets []*types.Pet
	for _, in := range []struct {
		name string
		age  int
	}{{"Rex", 4}, {"Fido", 2}, {"Kitty", 8}} {
		p, err := types.NewPet(in.name, in.age)
		require.NoError(t, err)
		pets = append(pets, p)
	}
	return pets
}

func TestOpen(t *testing.T) {
	s, err := Open(types.BackendJSONL, types.DefaultAgeRange())
	require.NoError(t, err)
	assert.IsType(t, &JSONLStore{}, s)

	s, err = Open(types.BackendSQLite, types.DefaultAgeRange())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)

	_, err = Open("csv", types.DefaultAgeRange())
	assert.ErrorIs(t, err, types.ErrBackendUnknown)

	_, err = Open(types.BackendJSONL, types.AgeRange{Min: 3, Max: 1})
	assert.ErrorIs(t, err, types.ErrInvalidRange)
}

func TestStore_LoadMissingFileCreatesIt(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s, err := Open(backend, types.DefaultAgeRange())
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "nested", "pets.dat")
			pets, err := s.Load(path)
			require.NoError(t, err)
			assert.Empty(t, pets)

			_, err = os.Stat(path)
			assert.NoError(t, err, "backing file should exist after load")

			pets, err = s.Load(path)
			require.NoError(t, err)
			assert.Empty(t, pets, "second load of the fresh file is still empty")
		})
	}
}

func TestStore_RoundTripKeepsOrderAndIDs(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			s, err := Open(backend, types.DefaultAgeRange())
			require.NoError(t, err)
			path := filepath.Join(t.TempDir(), "pets.dat")

			want := samplePets(t)
			require.NoError(t, s.Save(path, want))

			got, err := s.Load(path)
			require.NoError(t, err)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].ID(), got[i].ID())
				assert.Equal(t, want[i].Name(), got[i].Name())
				assert.Equal(t, want[i].Age(), got[i].Age())
			}

			// A second save replaces the first rather than appending.
			require.NoError(t, s.Save(path, want[:1]))
			got, err = s.Load(path)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Rex", got[0].Name())

			require.NoError(t, s.Save(path, nil))
			got, err = s.Load(path)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestJSONLStore_Format(t *testing.T) {
	s := &JSONLStore{limits: types.DefaultAgeRange()}
	path := filepath.Join(t.TempDir(), "pets.jsonl")

	pets := samplePets(t)
	require.NoError(t, s.Save(path, pets))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"pet_id":"`+pets[0].ID()+`"`)
	assert.Contains(t, lines[0], `"name":"Rex"`)
	assert.Contains(t, lines[0], `"age":4`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestJSONLStore_LoadSkipsBlankLinesAndFillsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.jsonl")
	content := "\n{\"name\":\"Rex\",\"age\":4}\n   \n{\"pet_id\":\"abc\",\"name\":\"Fido\",\"age\":2}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := &JSONLStore{limits: types.DefaultAgeRange()}
	pets, err := s.Load(path)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.NotEmpty(t, pets[0].ID())
	assert.Equal(t, "abc", pets[1].ID())
}

func TestJSONLStore_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed json", content: "{\"name\":\"Rex\",\"age\":4}\n{oops\n"},
		{name: "age out of range", content: "{\"name\":\"Rex\",\"age\":40}\n", wantErr: types.ErrInvalidAge},
		{name: "empty name", content: "{\"name\":\"\",\"age\":4}\n", wantErr: types.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pets.jsonl")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s := &JSONLStore{limits: types.DefaultAgeRange()}
			_, err := s.Load(path)
			assert.ErrorIs(t, err, types.ErrLoad)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSQLiteStore_LoadRejectsNonDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.db")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("this is not a sqlite database\n", 40)), 0o644))

	s := &SQLiteStore{limits: types.DefaultAgeRange()}
	_, err := s.Load(path)
	assert.ErrorIs(t, err, types.ErrLoad)
}

func TestStore_LoadValidatesAgainstConfiguredRange(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pets.dat")
			wide := types.AgeRange{Min: 0, Max: 50}

			writer, err := Open(backend, wide)
			require.NoError(t, err)
			old, err := types.NewPetInRange("Tortoise", 45, wide)
			require.NoError(t, err)
			require.NoError(t, writer.Save(path, []*types.Pet{old}))

			reader, err := Open(backend, types.DefaultAgeRange())
			require.NoError(t, err)
			_, err = reader.Load(path)
			assert.ErrorIs(t, err, types.ErrLoad)
			assert.ErrorIs(t, err, types.ErrInvalidAge)
		})
	}
}
