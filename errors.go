package seedgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyChoice is returned when drawing from an empty sequence or an
	// empty weight table.
	ErrEmptyChoice = errors.New("choice requires a non-empty sequence")
)

// ErrSampleSize indicates a sample count that is negative or exceeds the
// size of the sampled set.
type ErrSampleSize struct {
	Count int
	Size  int
}

func (e *ErrSampleSize) Error() string {
	return fmt.Sprintf("sample count %d out of bounds for set of size %d", e.Count, e.Size)
}

// ErrInvalidWeight indicates a weighted-choice weight that is not a
// positive integer.
type ErrInvalidWeight struct {
	Weight int64
}

func (e *ErrInvalidWeight) Error() string {
	return fmt.Sprintf("weight must be a positive integer, got %d", e.Weight)
}
