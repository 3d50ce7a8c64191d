package geom

import (
	"errors"
	"math"
)

var (
	// ErrNaN is returned when a numeric operand or an operation result is
	// not a number.
	ErrNaN = errors.New("value is not a number")

	// ErrDivideByZero is returned when dividing by a zero scalar.
	ErrDivideByZero = errors.New("division by zero scalar")

	// ErrDegenerate is returned when an operation that must store its
	// result would store NaN, e.g. projecting onto a zero-length vector.
	ErrDegenerate = errors.New("degenerate operand")
)

const (
	degPerRad = 180 / math.Pi
	radPerDeg = math.Pi / 180
)

func degToRad(deg float64) float64 { return deg * radPerDeg }

func radToDeg(rad float64) float64 { return rad * degPerRad }

// anyNaN reports whether any of the given values is NaN.
func anyNaN(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
