package types

// Store loads and saves the full list of pets as one unit. Order is
// preserved in both directions.
type Store interface {
	// Load reads every pet from path. A missing file is created empty and
	// yields no pets. Any failure on an existing file wraps ErrLoad.
	Load(path string) ([]*Pet, error)

	// Save replaces the contents of path with pets.
	Save(path string, pets []*Pet) error
}
