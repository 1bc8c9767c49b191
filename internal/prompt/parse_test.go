package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

func TestParseInt(t *testing.T) {
	n, err := ParseInt(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, raw := range []string{"", "abc", "1.5", "3 4"} {
		_, err := ParseInt(raw)
		assert.ErrorIs(t, err, types.ErrParse, "ParseInt(%q)", raw)
	}
}

func TestParsePet(t *testing.T) {
	parse := ParsePet(types.DefaultAgeRange())

	tests := []struct {
		name     string
		raw      string
		wantErr  bool
		wantName string
		wantAge  int
	}{
		{name: "name and age", raw: "Rover 5", wantName: "Rover", wantAge: 5},
		{name: "extra spaces", raw: "  Rover    5 ", wantName: "Rover", wantAge: 5},
		{name: "missing age", raw: "Rover", wantErr: true},
		{name: "three fields", raw: "Big Rover 5", wantErr: true},
		{name: "age not a number", raw: "Rover five", wantErr: true},
		{name: "age out of range", raw: "Rover 25", wantErr: true},
		{name: "empty line", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parse(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantAge, p.Age())
		})
	}
}

func TestParsePet_OutOfRangeKeepsValidationCause(t *testing.T) {
	_, err := ParsePet(types.DefaultAgeRange())("Rover 0")
	assert.ErrorIs(t, err, types.ErrParse)
	assert.ErrorIs(t, err, types.ErrInvalidAge)
}
