package numrange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidBounds is returned when min > max.
	ErrInvalidBounds = errors.New("min must not exceed max")

	// ErrNaNBound is returned when a float bound is NaN.
	ErrNaNBound = errors.New("range bound is not a number")

	// ErrParse is returned when a range string cannot be parsed.
	ErrParse = errors.New("malformed range")
)

// Int is a closed interval over int64 values.
// Either end may be unbounded. The zero value is fully unbounded.
type Int struct {
	min, max       int64
	hasMin, hasMax bool
}

// ExactInt returns the degenerate range [v, v].
func ExactInt(v int64) Int {
	return Int{min: v, max: v, hasMin: true, hasMax: true}
}

// MinInt returns the range [min, +inf).
func MinInt(min int64) Int {
	return Int{min: min, hasMin: true}
}

// MaxInt returns the range (-inf, max].
func MaxInt(max int64) Int {
	return Int{max: max, hasMax: true}
}

// MinMaxInt returns the range [min, max].
// It fails with ErrInvalidBounds when min > max.
func MinMaxInt(min, max int64) (Int, error) {
	if min > max {
		return Int{}, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, min, max)
	}
	return Int{min: min, max: max, hasMin: true, hasMax: true}, nil
}

// MustMinMaxInt returns the range [min, max], panicking on invalid bounds.
func MustMinMaxInt(min, max int64) Int {
	r, err := MinMaxInt(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound and whether it exists.
func (r Int) Min() (int64, bool) { return r.min, r.hasMin }

// Max returns the upper bound and whether it exists.
func (r Int) Max() (int64, bool) { return r.max, r.hasMax }

// Bounded reports whether both ends exist.
func (r Int) Bounded() bool { return r.hasMin && r.hasMax }

// Contains reports whether v lies within the range.
func (r Int) Contains(v int64) bool {
	if r.hasMin && v < r.min {
		return false
	}
	if r.hasMax && v > r.max {
		return false
	}
	return true
}

// Clamp saturates v into the range. Saturation is not an error path.
func (r Int) Clamp(v int64) int64 {
	if r.hasMin && v < r.min {
		return r.min
	}
	if r.hasMax && v > r.max {
		return r.max
	}
	return v
}

// String renders the range in the same syntax ParseInt accepts.
func (r Int) String() string {
	return formatRange(
		r.hasMin, r.hasMax,
		strconv.FormatInt(r.min, 10),
		strconv.FormatInt(r.max, 10),
		r.hasMin && r.hasMax && r.min == r.max,
	)
}

// ParseInt parses "v", "a..b", "a.." or "..b" into an Int range.
func ParseInt(s string) (Int, error) {
	lo, hi, hasLo, hasHi, exact, err := splitRange(s)
	if err != nil {
		return Int{}, err
	}
	if exact {
		v, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return Int{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		return ExactInt(v), nil
	}
	out := Int{}
	if hasLo {
		v, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return Int{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out.min, out.hasMin = v, true
	}
	if hasHi {
		v, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return Int{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out.max, out.hasMax = v, true
	}
	if out.hasMin && out.hasMax && out.min > out.max {
		return Int{}, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, out.min, out.max)
	}
	return out, nil
}

// Finite is a closed interval over float64 values.
// Either end may be unbounded. Bounds are never NaN.
type Finite struct {
	min, max       float64
	hasMin, hasMax bool
}

// ExactFinite returns the degenerate range [v, v].
// It fails with ErrNaNBound when v is NaN.
func ExactFinite(v float64) (Finite, error) {
	if math.IsNaN(v) {
		return Finite{}, ErrNaNBound
	}
	return Finite{min: v, max: v, hasMin: true, hasMax: true}, nil
}

// MinFinite returns the range [min, +inf).
func MinFinite(min float64) (Finite, error) {
	if math.IsNaN(min) {
		return Finite{}, ErrNaNBound
	}
	return Finite{min: min, hasMin: true}, nil
}

// MaxFinite returns the range (-inf, max].
func MaxFinite(max float64) (Finite, error) {
	if math.IsNaN(max) {
		return Finite{}, ErrNaNBound
	}
	return Finite{max: max, hasMax: true}, nil
}

// MinMaxFinite returns the range [min, max].
func MinMaxFinite(min, max float64) (Finite, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return Finite{}, ErrNaNBound
	}
	if min > max {
		return Finite{}, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, min, max)
	}
	return Finite{min: min, max: max, hasMin: true, hasMax: true}, nil
}

// MustMinMaxFinite returns the range [min, max], panicking on invalid bounds.
func MustMinMaxFinite(min, max float64) Finite {
	r, err := MinMaxFinite(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound and whether it exists.
func (r Finite) Min() (float64, bool) { return r.min, r.hasMin }

// Max returns the upper bound and whether it exists.
func (r Finite) Max() (float64, bool) { return r.max, r.hasMax }

// Bounded reports whether both ends exist.
func (r Finite) Bounded() bool { return r.hasMin && r.hasMax }

// Contains reports whether v lies within the range.
func (r Finite) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if r.hasMin && v < r.min {
		return false
	}
	if r.hasMax && v > r.max {
		return false
	}
	return true
}

// Clamp saturates v into the range. NaN is passed through unchanged;
// the comparisons below are all false for NaN.
func (r Finite) Clamp(v float64) float64 {
	if r.hasMin && v < r.min {
		return r.min
	}
	if r.hasMax && v > r.max {
		return r.max
	}
	return v
}

// String renders the range in the same syntax ParseFinite accepts.
func (r Finite) String() string {
	return formatRange(
		r.hasMin, r.hasMax,
		strconv.FormatFloat(r.min, 'g', -1, 64),
		strconv.FormatFloat(r.max, 'g', -1, 64),
		r.hasMin && r.hasMax && r.min == r.max,
	)
}

// ParseFinite parses "v", "a..b", "a.." or "..b" into a Finite range.
func ParseFinite(s string) (Finite, error) {
	lo, hi, hasLo, hasHi, exact, err := splitRange(s)
	if err != nil {
		return Finite{}, err
	}
	if exact {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return Finite{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		return ExactFinite(v)
	}
	out := Finite{}
	if hasLo {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return Finite{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out.min, out.hasMin = v, true
	}
	if hasHi {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return Finite{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out.max, out.hasMax = v, true
	}
	if math.IsNaN(out.min) || math.IsNaN(out.max) {
		return Finite{}, ErrNaNBound
	}
	if out.hasMin && out.hasMax && out.min > out.max {
		return Finite{}, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, out.min, out.max)
	}
	return out, nil
}

// Big is a closed interval over uint64 values, the 64-bit analog the
// long-period engine draws from. Either end may be unbounded.
type Big struct {
	min, max       uint64
	hasMin, hasMax bool
}

// ExactBig returns the degenerate range [v, v].
func ExactBig(v uint64) Big {
	return Big{min: v, max: v, hasMin: true, hasMax: true}
}

// MinBig returns the range [min, +inf).
func MinBig(min uint64) Big {
	return Big{min: min, hasMin: true}
}

// MaxBig returns the range [0, max].
func MaxBig(max uint64) Big {
	return Big{max: max, hasMax: true}
}

// MinMaxBig returns the range [min, max].
func MinMaxBig(min, max uint64) (Big, error) {
	if min > max {
		return Big{}, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, min, max)
	}
	return Big{min: min, max: max, hasMin: true, hasMax: true}, nil
}

// MustMinMaxBig returns the range [min, max], panicking on invalid bounds.
func MustMinMaxBig(min, max uint64) Big {
	r, err := MinMaxBig(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound and whether it exists.
func (r Big) Min() (uint64, bool) { return r.min, r.hasMin }

// Max returns the upper bound and whether it exists.
func (r Big) Max() (uint64, bool) { return r.max, r.hasMax }

// Bounded reports whether both ends exist.
func (r Big) Bounded() bool { return r.hasMin && r.hasMax }

// Clamp saturates v into the range.
func (r Big) Clamp(v uint64) uint64 {
	if r.hasMin && v < r.min {
		return r.min
	}
	if r.hasMax && v > r.max {
		return r.max
	}
	return v
}

// String renders the range in the same syntax ParseBig accepts.
func (r Big) String() string {
	return formatRange(
		r.hasMin, r.hasMax,
		strconv.FormatUint(r.min, 10),
		strconv.FormatUint(r.max, 10),
		r.hasMin && r.hasMax && r.min == r.max,
	)
}

// ParseBig parses "v", "a..b", "a.." or "..b" into a Big range.
func ParseBig(s string) (Big, error) {
	lo, hi, hasLo, hasHi, exact, err := splitRange(s)
	if err != nil {
		return Big{}, err
	}
	if exact {
		v, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return Big{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		return ExactBig(v), nil
	}
	out := Big{}
	if hasLo {
		v, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return Big{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out.min, out.hasMin = v, true
	}
	if hasHi {
		v, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return Big{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out.max, out.hasMax = v, true
	}
	if out.hasMin && out.hasMax && out.min > out.max {
		return Big{}, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, out.min, out.max)
	}
	return out, nil
}

// splitRange tears "v", "a..b", "a.." or "..b" into its textual parts.
// exact is true for the single-value form.
func splitRange(s string) (lo, hi string, hasLo, hasHi, exact bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false, false, false, fmt.Errorf("%w: empty input", ErrParse)
	}
	i := strings.Index(s, "..")
	if i < 0 {
		return s, "", true, false, true, nil
	}
	lo = strings.TrimSpace(s[:i])
	hi = strings.TrimSpace(s[i+2:])
	hasLo = lo != ""
	hasHi = hi != ""
	if !hasLo && !hasHi {
		return "", "", false, false, false, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return lo, hi, hasLo, hasHi, false, nil
}

func formatRange(hasMin, hasMax bool, min, max string, exact bool) string {
	switch {
	case exact:
		return min
	case hasMin && hasMax:
		return min + ".." + max
	case hasMin:
		return min + ".."
	case hasMax:
		return ".." + max
	default:
		return ".."
	}
}
