package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions.
// Data-quality conditions (missing source blocks, unparsable numerics, rows
// without identifiers) are deliberately NOT errors: the engine signals them
// through available:false analyses and sentinel values. Errors here cover
// programmer-contract violations and boundary failures only.
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrStudentNotFound  = fmt.Errorf("%w: student", ErrNotFound)
	ErrSnapshotNotFound = fmt.Errorf("%w: snapshot", ErrNotFound)

	// Contract violations
	ErrNilRecord        = errors.New("nil student record")
	ErrNilAnalysis      = errors.New("nil analyzed record")
	ErrEmptyIdentifier  = errors.New("empty student identifier")
	ErrMissingBaseline  = errors.New("no baseline snapshot for comparison")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsContractError(err error) bool {
	return errors.Is(err, ErrNilRecord) ||
		errors.Is(err, ErrNilAnalysis) ||
		errors.Is(err, ErrEmptyIdentifier)
}
