package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Default age bounds for a pet.
const (
	DefaultMinAge = 1
	DefaultMaxAge = 20
)

// AgeRange is the inclusive range of ages a Pet accepts.
type AgeRange struct {
	Min int `json:"min_age" yaml:"min_age" mapstructure:"min_age"`
	Max int `json:"max_age" yaml:"max_age" mapstructure:"max_age"`
}

// DefaultAgeRange returns the [1, 20] range.
func DefaultAgeRange() AgeRange {
	return AgeRange{Min: DefaultMinAge, Max: DefaultMaxAge}
}

// Validate checks that the range is non-negative and ordered.
func (r AgeRange) Validate() error {
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether age lies within the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Pet is a single pet record. Fields change only through SetName and SetAge,
// which leave the pet untouched on error.
type Pet struct {
	petID  string
	name   string
	age    int
	limits AgeRange
}

// NewPet creates a pet using the default age range.
func NewPet(name string, age int) (*Pet, error) {
	return NewPetInRange(name, age, DefaultAgeRange())
}

// NewPetInRange creates a pet whose age must stay within r. A UUID v7 is
// generated as its PetID.
func NewPetInRange(name string, age int, r AgeRange) (*Pet, error) {
	return RestorePet("", name, age, r)
}

// RestorePet rebuilds a pet read back from storage. An empty petID gets a
// freshly generated one.
func RestorePet(petID, name string, age int, r AgeRange) (*Pet, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	p := &Pet{petID: petID, limits: r}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetAge(age); err != nil {
		return nil, err
	}
	if p.petID == "" {
		p.petID = newPetID()
	}
	return p, nil
}

// ID returns the stable PetID. It is unrelated to the pet's position in a
// registry.
func (p *Pet) ID() string { return p.petID }

// Name returns the pet's name.
func (p *Pet) Name() string { return p.name }

// Age returns the pet's age.
func (p *Pet) Age() int { return p.age }

// Range returns the age range the pet validates against.
func (p *Pet) Range() AgeRange { return p.limits }

// SetName replaces the pet's name. Surrounding whitespace is trimmed.
// Returns ErrInvalidName if nothing is left.
func (p *Pet) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	p.name = name
	return nil
}

// SetAge replaces the pet's age. Returns ErrInvalidAge if age is outside the
// pet's range.
func (p *Pet) SetAge(age int) error {
	if !p.limits.Contains(age) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidAge, age, p.limits.Min, p.limits.Max)
	}
	p.age = age
	return nil
}

// Clone returns an independent copy of the pet.
func (p *Pet) Clone() *Pet {
	cp := *p
	return &cp
}

// String renders the pet as "name age".
func (p *Pet) String() string {
	return fmt.Sprintf("%s %d", p.name, p.age)
}

// newPetID generates a UUID v7 for a pet.
func newPetID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
