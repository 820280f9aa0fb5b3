package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every [InvalidInputError].
	ErrInvalidInput = errors.New("interp: invalid input")
	// ErrIndexOutOfRange is matched by every [IndexError].
	ErrIndexOutOfRange = errors.New("interp: index out of range")
)

// InvalidInputError reports input that a strategy or the strategy selector
// cannot work with, such as too few control points.
type InvalidInputError struct {
	// Reason is a human-readable description, suitable for showing to users.
	Reason string
}

func (err *InvalidInputError) Error() string { return err.Reason }

func (err *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func invalidInput(reason string) error {
	return &InvalidInputError{Reason: reason}
}

// IndexError reports an index outside of a [PointSet]'s valid range.
type IndexError struct {
	// Op is the name of the failing operation.
	Op    string
	Index int
	Len   int
	// Inclusive is set when Len itself was a valid index, as it is for
	// insertion.
	Inclusive bool
}

func (err *IndexError) Error() string {
	closing := ")"
	if err.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("interp: %s: index %d out of range [0, %d%s", err.Op, err.Index, err.Len, closing)
}

func (err *IndexError) Unwrap() error { return ErrIndexOutOfRange }
