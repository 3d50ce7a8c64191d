// Package numrange provides closed numeric intervals over int64, float64
// and uint64 values. Ranges are immutable after construction, may be
// unbounded on either end, and saturate (clamp) rather than reject
// out-of-bound values. They are the parameter types the rng engines draw
// from.
package numrange
