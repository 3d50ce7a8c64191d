package rng

import (
	"errors"

	"github.com/hupe1980/seedgo/numrange"
)

var (
	// ErrUnboundedRange is returned when a draw is requested over a range
	// that is missing one or both bounds.
	ErrUnboundedRange = errors.New("draw range must be bounded")
)

// Generator is the capability shared by all PRNG engines: drawing an
// integer or a real from a bounded range, inclusive of both bounds.
type Generator interface {
	// DrawInt draws an integer uniformly from the given range.
	DrawInt(r numrange.Int) (int64, error)

	// DrawReal draws a real from the given range.
	DrawReal(r numrange.Finite) (float64, error)
}

// warmupDraws is the number of discarded draws performed at engine
// construction to dilute low-entropy seeds.
const warmupDraws = 4

// intBounds extracts both bounds of an integer draw range, failing when
// either is missing.
func intBounds(r numrange.Int) (min, max int64, err error) {
	min, okMin := r.Min()
	max, okMax := r.Max()
	if !okMin || !okMax {
		return 0, 0, ErrUnboundedRange
	}
	return min, max, nil
}

// realBounds extracts both bounds of a real draw range, failing when
// either is missing.
func realBounds(r numrange.Finite) (min, max float64, err error) {
	min, okMin := r.Min()
	max, okMax := r.Max()
	if !okMin || !okMax {
		return 0, 0, ErrUnboundedRange
	}
	return min, max, nil
}

// spanInt maps a raw unsigned draw into [min, max] via modulo. The width
// arithmetic wraps in uint64 on purpose; a wrapped width of 0 means the
// range spans the full 64-bit word and the raw value is used as is.
func spanInt(raw uint64, min, max int64) int64 {
	width := uint64(max) - uint64(min) + 1
	if width != 0 {
		raw %= width
	}
	return min + int64(raw)
}
