package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rotation3 is a mutable triple-axis rotation holding yaw, pitch and roll
// in degrees. Angles are not normalized to any canonical range; mutation is
// always explicit.
type Rotation3 struct {
	yaw, pitch, roll float64
}

// NewRotation3 constructs a triple-axis rotation, failing with ErrNaN when
// any angle is not a number.
func NewRotation3(yaw, pitch, roll float64) (*Rotation3, error) {
	if anyNaN(yaw, pitch, roll) {
		return nil, fmt.Errorf("new rotation3: %w", ErrNaN)
	}
	return &Rotation3{yaw: yaw, pitch: pitch, roll: roll}, nil
}

// MustRotation3 constructs a triple-axis rotation, panicking on NaN angles.
func MustRotation3(yaw, pitch, roll float64) *Rotation3 {
	r, err := NewRotation3(yaw, pitch, roll)
	if err != nil {
		panic(err)
	}
	return r
}

// ZeroRotation3 returns the identity rotation.
func ZeroRotation3() *Rotation3 { return &Rotation3{} }

// RotationFromAxes reconstructs a triple-axis rotation from an orthonormal
// (x, y) basis pair: z = x cross y, then yaw = atan2(-z.x, z.z),
// pitch = asin(-z.y) and roll = atan2(x.y, y.y), all in degrees.
func RotationFromAxes(x, y *Vector3) (*Rotation3, error) {
	z, err := x.Clone().Cross(y)
	if err != nil {
		return nil, fmt.Errorf("rotation from axes: %w", err)
	}
	return NewRotation3(
		radToDeg(math.Atan2(-z.x, z.z)),
		radToDeg(math.Asin(-z.y)),
		radToDeg(math.Atan2(x.y, y.y)),
	)
}

// Yaw returns the yaw angle in degrees.
func (r *Rotation3) Yaw() float64 { return r.yaw }

// Pitch returns the pitch angle in degrees.
func (r *Rotation3) Pitch() float64 { return r.pitch }

// Roll returns the roll angle in degrees.
func (r *Rotation3) Roll() float64 { return r.roll }

// X returns pitch, matching the dual-axis accessor swap.
func (r *Rotation3) X() float64 { return r.pitch }

// Y returns yaw, matching the dual-axis accessor swap.
func (r *Rotation3) Y() float64 { return r.yaw }

// Equals reports exact component-wise equality.
func (r *Rotation3) Equals(other *Rotation3) bool {
	return r.yaw == other.yaw && r.pitch == other.pitch && r.roll == other.roll
}

// IsZero reports whether all angles are exactly zero.
func (r *Rotation3) IsZero() bool {
	return r.yaw == 0 && r.pitch == 0 && r.roll == 0
}

// Clone returns an independent copy.
func (r *Rotation3) Clone() *Rotation3 {
	c := *r
	return &c
}

func (r *Rotation3) store(op string, yaw, pitch, roll float64) (*Rotation3, error) {
	if anyNaN(yaw, pitch, roll) {
		return nil, fmt.Errorf("%s: %w", op, ErrNaN)
	}
	r.yaw, r.pitch, r.roll = yaw, pitch, roll
	return r, nil
}

// MapUnary replaces each angle with f(angle).
func (r *Rotation3) MapUnary(f func(float64) float64) (*Rotation3, error) {
	return r.store("map unary", f(r.yaw), f(r.pitch), f(r.roll))
}

// MapBinary replaces each angle with f(own, other) component-wise.
func (r *Rotation3) MapBinary(other *Rotation3, f func(a, b float64) float64) (*Rotation3, error) {
	return r.store("map binary", f(r.yaw, other.yaw), f(r.pitch, other.pitch), f(r.roll, other.roll))
}

// Add adds other component-wise.
func (r *Rotation3) Add(other *Rotation3) (*Rotation3, error) {
	return r.store("add", r.yaw+other.yaw, r.pitch+other.pitch, r.roll+other.roll)
}

// Subtract subtracts other component-wise.
func (r *Rotation3) Subtract(other *Rotation3) (*Rotation3, error) {
	return r.store("subtract", r.yaw-other.yaw, r.pitch-other.pitch, r.roll-other.roll)
}

// Scale multiplies every angle by k.
func (r *Rotation3) Scale(k float64) (*Rotation3, error) {
	if math.IsNaN(k) {
		return nil, fmt.Errorf("scale: %w", ErrNaN)
	}
	return r.store("scale", r.yaw*k, r.pitch*k, r.roll*k)
}

// Divide divides every angle by k, failing when k is zero.
func (r *Rotation3) Divide(k float64) (*Rotation3, error) {
	if math.IsNaN(k) {
		return nil, fmt.Errorf("divide: %w", ErrNaN)
	}
	if k == 0 {
		return nil, fmt.Errorf("divide: %w", ErrDivideByZero)
	}
	return r.store("divide", r.yaw/k, r.pitch/k, r.roll/k)
}

// Invert turns the rotation around, defined as the Back direction of the
// object coordinate system the rotation spans.
func (r *Rotation3) Invert() (*Rotation3, error) {
	ocs, err := NewObjectCoordinateSystem(r)
	if err != nil {
		return nil, fmt.Errorf("invert: %w", err)
	}
	back, err := ocs.Back()
	if err != nil {
		return nil, fmt.Errorf("invert: %w", err)
	}
	r.yaw, r.pitch, r.roll = back.yaw, back.pitch, back.roll
	return r, nil
}

// Clamp clamps yaw, pitch and roll between the matching angles of min and
// max. To clamp yaw and pitch only, use ClampAxes with dual-axis bounds.
func (r *Rotation3) Clamp(min, max *Rotation3) (*Rotation3, error) {
	return r.store("clamp",
		math.Min(math.Max(r.yaw, min.yaw), max.yaw),
		math.Min(math.Max(r.pitch, min.pitch), max.pitch),
		math.Min(math.Max(r.roll, min.roll), max.roll),
	)
}

// ClampAxes clamps yaw and pitch between the matching angles of the
// dual-axis bounds, leaving roll untouched.
func (r *Rotation3) ClampAxes(min, max *Rotation2) (*Rotation3, error) {
	return r.store("clamp axes",
		math.Min(math.Max(r.yaw, min.yaw), max.yaw),
		math.Min(math.Max(r.pitch, min.pitch), max.pitch),
		r.roll,
	)
}

// Direction3D returns the unit vector the rotation looks along. Roll does
// not affect the forward direction.
func (r *Rotation3) Direction3D() (*Vector3, error) {
	return direction3D(r.yaw, r.pitch)
}

// ObjectCoordinateSystem derives the orthonormal basis spanned by the
// rotation. See NewObjectCoordinateSystem.
func (r *Rotation3) ObjectCoordinateSystem() (*ObjectCoordinateSystem, error) {
	return NewObjectCoordinateSystem(r)
}

// Format substitutes the {yaw}, {pitch} and {roll} tokens in template with
// the angles rendered to the given number of fractional digits.
func (r *Rotation3) Format(template string, digits int) string {
	rep := strings.NewReplacer(
		"{yaw}", strconv.FormatFloat(r.yaw, 'f', digits, 64),
		"{pitch}", strconv.FormatFloat(r.pitch, 'f', digits, 64),
		"{roll}", strconv.FormatFloat(r.roll, 'f', digits, 64),
	)
	return rep.Replace(template)
}

// String renders the rotation as "(yaw, pitch, roll)".
func (r *Rotation3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", r.yaw, r.pitch, r.roll)
}
