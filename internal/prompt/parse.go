package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/petdb/pkg/types"
)

// ParseInt parses a base-10 integer, ignoring surrounding space.
func ParseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", types.ErrParse, raw)
	}
	return n, nil
}

// ParsePet returns a Parser for lines of the form "name age". Exactly two
// whitespace-separated fields are required and the age must fall within r.
func ParsePet(r types.AgeRange) Parser[*types.Pet] {
	return func(raw string) (*types.Pet, error) {
		fields := strings.Fields(raw)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: want \"name age\", got %q", types.ErrParse, raw)
		}
		age, err := ParseInt(fields[1])
		if err != nil {
			return nil, err
		}
		pet, err := types.NewPetInRange(fields[0], age, r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrParse, err)
		}
		return pet, nil
	}
}
