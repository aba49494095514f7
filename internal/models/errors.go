package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the model layer. Callers match them with errors.Is.
var (
	// ErrType indicates input that is not numeric or not a table at all.
	ErrType = errors.New("type error")
	// ErrValue indicates numeric input with an invalid value or shape.
	ErrValue = errors.New("value error")
	// ErrIndex indicates an out-of-range access.
	ErrIndex = errors.New("index out of range")
	// ErrEmpty indicates access to an element of an empty collection.
	ErrEmpty = fmt.Errorf("%w: empty collection", ErrIndex)
)

// DimensionError reports a table that is numeric but not two-dimensional.
type DimensionError struct {
	Dims int
	// Row is the first row whose length differs from row 0; -1 when the
	// table is not ragged.
	Row int
}

func (e *DimensionError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("inflammation array should be 2-dimensional: row %d has a different length", e.Row)
	}
	return fmt.Sprintf("inflammation array should be 2-dimensional, got %d dimension(s)", e.Dims)
}

// Unwrap lets errors.Is(err, ErrValue) match dimension failures.
func (e *DimensionError) Unwrap() error { return ErrValue }
