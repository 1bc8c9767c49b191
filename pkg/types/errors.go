package types

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap one of these so callers can
// branch on the category with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrCapacity      = errors.New("capacity exceeded")
	ErrNotFound      = errors.New("pet not found")
	ErrParse         = errors.New("could not parse input")
	ErrImmutableView = errors.New("view is read-only")
	ErrLoad          = errors.New("load failed")
)

// Record and registry errors.
var (
	ErrInvalidName  = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrInvalidAge   = fmt.Errorf("%w: age out of range", ErrValidation)
	ErrInvalidRange = fmt.Errorf("%w: invalid age range", ErrValidation)
	ErrRegistryFull = fmt.Errorf("%w: registry full", ErrCapacity)
)
