package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewPet(t *testing.T) {
	tests := []struct {
		name     string
		petName  string
		age      int
		wantErr  error
		wantName string
	}{
		{name: "lower bound", petName: "Rex", age: 1, wantName: "Rex"},
		{name: "upper bound", petName: "Fido", age: 20, wantName: "Fido"},
		{name: "trims whitespace", petName: "  Kitty ", age: 8, wantName: "Kitty"},
		{name: "age zero rejected", petName: "Rex", age: 0, wantErr: ErrInvalidAge},
		{name: "age above max rejected", petName: "Rex", age: 21, wantErr: ErrInvalidAge},
		{name: "negative age rejected", petName: "Rex", age: -3, wantErr: ErrInvalidAge},
		{name: "empty name rejected", petName: "", age: 3, wantErr: ErrInvalidName},
		{name: "blank name rejected", petName: "   ", age: 3, wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPet(tt.petName, tt.age)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.age, p.Age())
			_, err = uuid.Parse(p.ID())
			assert.NoError(t, err, "PetID should be a UUID")
		})
	}
}

func TestPetSettersLeavePetUnchangedOnError(t *testing.T) {
	p, err := NewPet("Rex", 4)
	require.NoError(t, err)

	assert.ErrorIs(t, p.SetAge(42), ErrInvalidAge)
	assert.ErrorIs(t, p.SetName(""), ErrInvalidName)

	assert.Equal(t, "Rex", p.Name())
	assert.Equal(t, 4, p.Age())

	require.NoError(t, p.SetName("Max"))
	require.NoError(t, p.SetAge(7))
	assert.Equal(t, "Max 7", p.String())
}

func TestNewPetInRange(t *testing.T) {
	r := AgeRange{Min: 0, Max: 40}
	p, err := NewPetInRange("Tortoise", 35, r)
	require.NoError(t, err)
	assert.Equal(t, r, p.Range())

	_, err = NewPetInRange("Rex", 3, AgeRange{Min: 5, Max: 2})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRestorePetKeepsID(t *testing.T) {
	p, err := RestorePet("fixed-id", "Rex", 4, DefaultAgeRange())
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", p.ID())

	fresh, err := RestorePet("", "Rex", 4, DefaultAgeRange())
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.ID())
}

func TestPetClone(t *testing.T) {
	p, err := NewPet("Rex", 4)
	require.NoError(t, err)

	cp := p.Clone()
	require.NoError(t, cp.SetName("Other"))
	assert.Equal(t, "Rex", p.Name())
	assert.Equal(t, p.ID(), cp.ID())
}

func TestNewPetAcceptsEveryValidPair(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9]{0,15}`).Draw(r, "name")
		age := rapid.IntRange(DefaultMinAge, DefaultMaxAge).Draw(r, "age")

		p, err := NewPet(name, age)
		if err != nil {
			r.Fatalf("NewPet(%q, %d): %v", name, age, err)
		}
		if p.Name() != name || p.Age() != age {
			r.Fatalf("accessors returned %q/%d, want %q/%d", p.Name(), p.Age(), name, age)
		}
	})
}

func TestSetAgeRejectsEveryOutOfRangeAge(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		age := rapid.OneOf(
			rapid.IntRange(-1000, DefaultMinAge-1),
			rapid.IntRange(DefaultMaxAge+1, 1000),
		).Draw(r, "age")

		p, err := NewPet("Rex", 5)
		if err != nil {
			r.Fatal(err)
		}
		if err := p.SetAge(age); err == nil {
			r.Fatalf("SetAge(%d) succeeded", age)
		}
		if p.Age() != 5 {
			r.Fatalf("age changed to %d after rejected SetAge", p.Age())
		}
	})
}
