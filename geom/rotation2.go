package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rotation2 is a mutable dual-axis rotation holding yaw and pitch in
// degrees. Angles are not normalized to any canonical range; mutation is
// always explicit.
//
// The generic X accessor maps to pitch and Y to yaw. The swap is
// intentional and matches the vector-like arithmetic surface of the type.
type Rotation2 struct {
	yaw, pitch float64
}

// NewRotation2 constructs a dual-axis rotation, failing with ErrNaN when
// either angle is not a number.
func NewRotation2(yaw, pitch float64) (*Rotation2, error) {
	if anyNaN(yaw, pitch) {
		return nil, fmt.Errorf("new rotation2: %w", ErrNaN)
	}
	return &Rotation2{yaw: yaw, pitch: pitch}, nil
}

// MustRotation2 constructs a dual-axis rotation, panicking on NaN angles.
func MustRotation2(yaw, pitch float64) *Rotation2 {
	r, err := NewRotation2(yaw, pitch)
	if err != nil {
		panic(err)
	}
	return r
}

// ZeroRotation2 returns the identity rotation.
func ZeroRotation2() *Rotation2 { return &Rotation2{} }

// Yaw returns the yaw angle in degrees.
func (r *Rotation2) Yaw() float64 { return r.yaw }

// Pitch returns the pitch angle in degrees.
func (r *Rotation2) Pitch() float64 { return r.pitch }

// X returns pitch.
func (r *Rotation2) X() float64 { return r.pitch }

// Y returns yaw.
func (r *Rotation2) Y() float64 { return r.yaw }

// Equals reports exact component-wise equality.
func (r *Rotation2) Equals(other *Rotation2) bool {
	return r.yaw == other.yaw && r.pitch == other.pitch
}

// IsZero reports whether both angles are exactly zero.
func (r *Rotation2) IsZero() bool {
	return r.yaw == 0 && r.pitch == 0
}

// Clone returns an independent copy.
func (r *Rotation2) Clone() *Rotation2 {
	c := *r
	return &c
}

func (r *Rotation2) store(op string, yaw, pitch float64) (*Rotation2, error) {
	if anyNaN(yaw, pitch) {
		return nil, fmt.Errorf("%s: %w", op, ErrNaN)
	}
	r.yaw, r.pitch = yaw, pitch
	return r, nil
}

// MapUnary replaces each angle with f(angle).
func (r *Rotation2) MapUnary(f func(float64) float64) (*Rotation2, error) {
	return r.store("map unary", f(r.yaw), f(r.pitch))
}

// MapBinary replaces each angle with f(own, other) component-wise.
func (r *Rotation2) MapBinary(other *Rotation2, f func(a, b float64) float64) (*Rotation2, error) {
	return r.store("map binary", f(r.yaw, other.yaw), f(r.pitch, other.pitch))
}

// Add adds other component-wise.
func (r *Rotation2) Add(other *Rotation2) (*Rotation2, error) {
	return r.store("add", r.yaw+other.yaw, r.pitch+other.pitch)
}

// Subtract subtracts other component-wise.
func (r *Rotation2) Subtract(other *Rotation2) (*Rotation2, error) {
	return r.store("subtract", r.yaw-other.yaw, r.pitch-other.pitch)
}

// Scale multiplies both angles by k.
func (r *Rotation2) Scale(k float64) (*Rotation2, error) {
	if math.IsNaN(k) {
		return nil, fmt.Errorf("scale: %w", ErrNaN)
	}
	return r.store("scale", r.yaw*k, r.pitch*k)
}

// Divide divides both angles by k, failing when k is zero.
func (r *Rotation2) Divide(k float64) (*Rotation2, error) {
	if math.IsNaN(k) {
		return nil, fmt.Errorf("divide: %w", ErrNaN)
	}
	if k == 0 {
		return nil, fmt.Errorf("divide: %w", ErrDivideByZero)
	}
	return r.store("divide", r.yaw/k, r.pitch/k)
}

// Invert turns the rotation around: 180 degrees are added to yaw and
// pitch is negated.
func (r *Rotation2) Invert() (*Rotation2, error) {
	return r.store("invert", r.yaw+180, -r.pitch)
}

// Clamp clamps yaw and pitch between the matching angles of min and max.
func (r *Rotation2) Clamp(min, max *Rotation2) (*Rotation2, error) {
	return r.store("clamp",
		math.Min(math.Max(r.yaw, min.yaw), max.yaw),
		math.Min(math.Max(r.pitch, min.pitch), max.pitch),
	)
}

// Direction3D returns the unit vector the rotation looks along:
// (-sin(yaw)*cos(pitch), -sin(pitch), cos(yaw)*cos(pitch)).
func (r *Rotation2) Direction3D() (*Vector3, error) {
	return direction3D(r.yaw, r.pitch)
}

func direction3D(yawDeg, pitchDeg float64) (*Vector3, error) {
	yaw := degToRad(yawDeg)
	pitch := degToRad(pitchDeg)
	return NewVector3(
		-math.Sin(yaw)*math.Cos(pitch),
		-math.Sin(pitch),
		math.Cos(yaw)*math.Cos(pitch),
	)
}

// Format substitutes the {yaw} and {pitch} tokens in template with the
// angles rendered to the given number of fractional digits.
func (r *Rotation2) Format(template string, digits int) string {
	rep := strings.NewReplacer(
		"{yaw}", strconv.FormatFloat(r.yaw, 'f', digits, 64),
		"{pitch}", strconv.FormatFloat(r.pitch, 'f', digits, 64),
	)
	return rep.Replace(template)
}

// String renders the rotation as "(yaw, pitch)".
func (r *Rotation2) String() string {
	return fmt.Sprintf("(%v, %v)", r.yaw, r.pitch)
}
