package registry

import (
	"fmt"
	"iter"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

// View is a read-only, ordered snapshot of a registry. Pets read through a
// View are copies. The mutating methods exist so that misuse fails loudly
// with ErrImmutableView; change pets through the Registry instead.
type View struct {
	pets []*types.Pet
}

// Snapshot returns a View of the registry as it is now. Later changes to the
// registry are not reflected in the View.
func (r *Registry) Snapshot() View {
	pets := make([]*types.Pet, len(r.pets))
	for i, p := range r.pets {
		pets[i] = p.Clone()
	}
	return View{pets: pets}
}

// Len returns the number of pets in the view.
func (v View) Len() int { return len(v.pets) }

// At returns a copy of the pet at id, or ErrNotFound.
func (v View) At(id int) (*types.Pet, error) {
	if id < 0 || id >= len(v.pets) {
		return nil, fmt.Errorf("%w: id %d", types.ErrNotFound, id)
	}
	return v.pets[id].Clone(), nil
}

// All yields every id and a copy of its pet, in order.
func (v View) All() iter.Seq2[int, *types.Pet] {
	return func(yield func(int, *types.Pet) bool) {
		for i, p := range v.pets {
			if !yield(i, p.Clone()) {
				return
			}
		}
	}
}

// Pets returns copies of every pet, in order.
func (v View) Pets() []*types.Pet {
	out := make([]*types.Pet, 0, len(v.pets))
	for _, p := range v.All() {
		out = append(out, p)
	}
	return out
}

// Set always fails with ErrImmutableView.
func (v View) Set(int, *types.Pet) error { return types.ErrImmutableView }

// Append always fails with ErrImmutableView.
func (v View) Append(*types.Pet) error { return types.ErrImmutableView }

// Remove always fails with ErrImmutableView.
func (v View) Remove(int) error { return types.ErrImmutableView }
