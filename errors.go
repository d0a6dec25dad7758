package geo3

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an ID is not in the collection.
	ErrNotFound = errors.New("not found")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidRadius is returned when a radius is negative or NaN.
	ErrInvalidRadius = errors.New("radius must be non-negative")

	// ErrLengthMismatch is returned when parallel batch slices differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// ErrMalformedPoint indicates textual point input that does not decode as
// three scalars. Coordinate is the 0-based index of the coordinate that
// failed to decode.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedPoint struct {
	Input      string
	Coordinate int
	cause      error
}

func (e *ErrMalformedPoint) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("malformed point: coordinate %d", e.Coordinate)
	}
	return fmt.Sprintf("malformed point %q: coordinate %d", e.Input, e.Coordinate)
}

func (e *ErrMalformedPoint) Unwrap() error { return e.cause }
