// Package registry keeps the ordered, optionally bounded collection of pets.
//
// A pet's id is its zero-based position at the time of the call. Removing a
// pet shifts every later id down by one. Each operation either succeeds
// completely or returns an error with the registry unchanged.
package registry

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

// NameMatch selects how FilterByName compares names.
type NameMatch int

const (
	// MatchExact compares names byte for byte.
	MatchExact NameMatch = iota
	// MatchFold compares names case-insensitively.
	MatchFold
)

// Indexed pairs a pet with its id at the time it was selected.
type Indexed struct {
	ID  int
	Pet *types.Pet
}

// Registry is an ordered list of pets. It is not safe for concurrent use.
type Registry struct {
	pets    []*types.Pet
	maxSize int
	bounded bool
}

// Option configures a Registry built by New.
type Option func(*Registry) error

// WithPets seeds the registry in the given order.
func WithPets(pets ...*types.Pet) Option {
	return func(r *Registry) error {
		for _, p := range pets {
			if p == nil {
				return fmt.Errorf("%w: nil pet in seed", types.ErrValidation)
			}
		}
		r.pets = append(r.pets, pets...)
		return nil
	}
}

// WithMaxSize caps the registry. It must come after WithPets when both are
// used so the seed is checked against the cap.
func WithMaxSize(n int) Option {
	return func(r *Registry) error {
		return r.SetMaxSize(n)
	}
}

// New builds a registry. It is empty unless seeded with WithPets.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Len returns the number of pets.
func (r *Registry) Len() int { return len(r.pets) }

// Add appends pet and returns its id. Returns ErrRegistryFull when the
// registry is at its maximum size.
func (r *Registry) Add(pet *types.Pet) (int, error) {
	if pet == nil {
		return -1, fmt.Errorf("%w: nil pet", types.ErrValidation)
	}
	if r.bounded && len(r.pets) >= r.maxSize {
		return -1, fmt.Errorf("%w: max size %d", types.ErrRegistryFull, r.maxSize)
	}
	r.pets = append(r.pets, pet)
	return len(r.pets) - 1, nil
}

// Has reports whether id names a pet.
func (r *Registry) Has(id int) bool {
	return id >= 0 && id < len(r.pets)
}

// ByID returns the pet at id, or ErrNotFound.
func (r *Registry) ByID(id int) (*types.Pet, error) {
	if !r.Has(id) {
		return nil, fmt.Errorf("%w: id %d", types.ErrNotFound, id)
	}
	return r.pets[id], nil
}

// RemoveByID removes and returns the pet at id. Later pets move down one id.
func (r *Registry) RemoveByID(id int) (*types.Pet, error) {
	pet, err := r.ByID(id)
	if err != nil {
		return nil, err
	}
	copy(r.pets[id:], r.pets[id+1:])
	r.pets[len(r.pets)-1] = nil
	r.pets = r.pets[:len(r.pets)-1]
	return pet, nil
}

// Update replaces the name and age of the pet at id. Both values are
// validated before either is written.
func (r *Registry) Update(id int, name string, age int) error {
	pet, err := r.ByID(id)
	if err != nil {
		return err
	}
	probe := pet.Clone()
	if err := probe.SetName(name); err != nil {
		return err
	}
	if err := probe.SetAge(age); err != nil {
		return err
	}
	// Both checks passed on the copy; these cannot fail.
	_ = pet.SetName(name)
	_ = pet.SetAge(age)
	return nil
}

// FilterByAge returns the pets whose age equals age, in registry order.
func (r *Registry) FilterByAge(age int) []*types.Pet {
	return pick(r.Filter(func(p *types.Pet) bool { return p.Age() == age }))
}

// FilterByName returns the pets whose name equals name under match, in
// registry order.
func (r *Registry) FilterByName(name string, match NameMatch) []*types.Pet {
	return pick(r.Filter(NameMatcher(name, match)))
}

// NameMatcher returns a predicate comparing a pet's name to name.
func NameMatcher(name string, match NameMatch) func(*types.Pet) bool {
	if match == MatchFold {
		return func(p *types.Pet) bool { return strings.EqualFold(p.Name(), name) }
	}
	return func(p *types.Pet) bool { return p.Name() == name }
}

// Filter returns every pet accepted by keep together with its current id.
// The result is never nil.
func (r *Registry) Filter(keep func(*types.Pet) bool) []Indexed {
	out := []Indexed{}
	for i, p := range r.pets {
		if keep == nil || keep(p) {
			out = append(out, Indexed{ID: i, Pet: p})
		}
	}
	return out
}

// SetMaxSize caps the registry at n pets. Returns ErrValidation when n is
// negative or smaller than the current size.
func (r *Registry) SetMaxSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: max size %d is negative", types.ErrValidation, n)
	}
	if n < len(r.pets) {
		return fmt.Errorf("%w: max size %d is smaller than current size %d", types.ErrValidation, n, len(r.pets))
	}
	r.maxSize = n
	r.bounded = true
	return nil
}

// ClearMaxSize removes the cap.
func (r *Registry) ClearMaxSize() {
	r.maxSize = 0
	r.bounded = false
}

// MaxSize returns the cap and whether one is set.
func (r *Registry) MaxSize() (int, bool) {
	return r.maxSize, r.bounded
}

// Pets returns the pets in order. The slice is a copy but the pets are the
// registry's own, so changing one bypasses validation of the registry. Use
// Snapshot for copies that are safe to hand out.
func (r *Registry) Pets() []*types.Pet {
	out := make([]*types.Pet, len(r.pets))
	copy(out, r.pets)
	return out
}

func pick(items []Indexed) []*types.Pet {
	out := make([]*types.Pet, len(items))
	for i, it := range items {
		out[i] = it.Pet
	}
	return out
}
