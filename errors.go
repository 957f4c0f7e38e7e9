package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by the error returned from checked accessors
	// when the index is not in [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrTooLarge is wrapped by the panic value raised when storage of the
	// requested size cannot be allocated.
	ErrTooLarge = errors.New("vector: allocation size out of range")
)

// RangeError reports a checked access outside the live elements.
type RangeError struct {
	Index int // requested index
	Len   int // vector size at the time of the call
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Len)
}

// Is makes errors.Is(err, ErrOutOfRange) succeed for a *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
