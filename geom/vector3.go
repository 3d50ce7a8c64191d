package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector3 is a mutable 3-component real vector.
// Operations mutate the receiver in place and return it for chaining;
// use Clone for an independent snapshot. Components are never NaN.
type Vector3 struct {
	x, y, z float64
}

// NewVector3 constructs a vector, failing with ErrNaN when any component
// is not a number.
func NewVector3(x, y, z float64) (*Vector3, error) {
	if anyNaN(x, y, z) {
		return nil, fmt.Errorf("new vector3: %w", ErrNaN)
	}
	return &Vector3{x: x, y: y, z: z}, nil
}

// MustVector3 constructs a vector, panicking on NaN components.
func MustVector3(x, y, z float64) *Vector3 {
	v, err := NewVector3(x, y, z)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns the zero vector.
func Zero() *Vector3 { return &Vector3{} }

// Filled returns a vector with every component set to value.
func Filled(value float64) (*Vector3, error) {
	return NewVector3(value, value, value)
}

// XZ constructs a vector from x and z components with an optional y
// (defaulting to 0).
func XZ(x, z float64, y ...float64) (*Vector3, error) {
	yy := 0.0
	if len(y) > 0 {
		yy = y[0]
	}
	return NewVector3(x, yy, z)
}

// MinVector3 returns a new vector with the component-wise minimum of a and b.
func MinVector3(a, b *Vector3) *Vector3 {
	return &Vector3{
		x: math.Min(a.x, b.x),
		y: math.Min(a.y, b.y),
		z: math.Min(a.z, b.z),
	}
}

// MaxVector3 returns a new vector with the component-wise maximum of a and b.
func MaxVector3(a, b *Vector3) *Vector3 {
	return &Vector3{
		x: math.Max(a.x, b.x),
		y: math.Max(a.y, b.y),
		z: math.Max(a.z, b.z),
	}
}

// X returns the x component.
func (v *Vector3) X() float64 { return v.x }

// Y returns the y component.
func (v *Vector3) Y() float64 { return v.y }

// Z returns the z component.
func (v *Vector3) Z() float64 { return v.z }

// Set replaces all three components.
func (v *Vector3) Set(x, y, z float64) (*Vector3, error) {
	if anyNaN(x, y, z) {
		return nil, fmt.Errorf("set: %w", ErrNaN)
	}
	v.x, v.y, v.z = x, y, z
	return v, nil
}

// Equals reports exact component-wise equality.
func (v *Vector3) Equals(other *Vector3) bool {
	return v.x == other.x && v.y == other.y && v.z == other.z
}

// IsZero reports whether all components are exactly zero.
func (v *Vector3) IsZero() bool {
	return v.x == 0 && v.y == 0 && v.z == 0
}

// Clone returns an independent copy.
func (v *Vector3) Clone() *Vector3 {
	c := *v
	return &c
}

// store writes the candidate components, failing without partial mutation
// when any of them is NaN.
func (v *Vector3) store(op string, x, y, z float64) (*Vector3, error) {
	if anyNaN(x, y, z) {
		return nil, fmt.Errorf("%s: %w", op, ErrNaN)
	}
	v.x, v.y, v.z = x, y, z
	return v, nil
}

// MapUnary replaces each component with f(component).
func (v *Vector3) MapUnary(f func(float64) float64) (*Vector3, error) {
	return v.store("map unary", f(v.x), f(v.y), f(v.z))
}

// MapBinary replaces each component with f(own, other) component-wise.
func (v *Vector3) MapBinary(other *Vector3, f func(a, b float64) float64) (*Vector3, error) {
	return v.store("map binary", f(v.x, other.x), f(v.y, other.y), f(v.z, other.z))
}

// Add adds other component-wise.
func (v *Vector3) Add(other *Vector3) (*Vector3, error) {
	return v.store("add", v.x+other.x, v.y+other.y, v.z+other.z)
}

// Subtract is the addition of other's negation.
func (v *Vector3) Subtract(other *Vector3) (*Vector3, error) {
	neg, err := other.Clone().Invert()
	if err != nil {
		return nil, err
	}
	return v.Add(neg)
}

// Scale multiplies every component by k.
func (v *Vector3) Scale(k float64) (*Vector3, error) {
	if math.IsNaN(k) {
		return nil, fmt.Errorf("scale: %w", ErrNaN)
	}
	return v.store("scale", v.x*k, v.y*k, v.z*k)
}

// Divide divides every component by k, failing when k is zero.
func (v *Vector3) Divide(k float64) (*Vector3, error) {
	if math.IsNaN(k) {
		return nil, fmt.Errorf("divide: %w", ErrNaN)
	}
	if k == 0 {
		return nil, fmt.Errorf("divide: %w", ErrDivideByZero)
	}
	return v.store("divide", v.x/k, v.y/k, v.z/k)
}

// Invert scales by -1.
func (v *Vector3) Invert() (*Vector3, error) {
	return v.Scale(-1)
}

// Dot returns the dot product with other.
func (v *Vector3) Dot(other *Vector3) float64 {
	return v.x*other.x + v.y*other.y + v.z*other.z
}

// Cross replaces the vector with the right-handed cross product v x other.
func (v *Vector3) Cross(other *Vector3) (*Vector3, error) {
	return v.store("cross",
		v.y*other.z-v.z*other.y,
		v.z*other.x-v.x*other.z,
		v.x*other.y-v.y*other.x,
	)
}

// Hadamard returns a clone holding the component-wise product with other.
// The receiver is left unchanged.
func (v *Vector3) Hadamard(other *Vector3) (*Vector3, error) {
	return v.Clone().MapBinary(other, func(a, b float64) float64 { return a * b })
}

// Length returns the Euclidean norm.
func (v *Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// SetLength rescales the vector to the given length. A zero-length vector
// is returned unchanged.
func (v *Vector3) SetLength(target float64) (*Vector3, error) {
	if math.IsNaN(target) {
		return nil, fmt.Errorf("set length: %w", ErrNaN)
	}
	l := v.Length()
	if l == 0 {
		return v, nil
	}
	return v.Scale(target / l)
}

// Normalize rescales the vector to unit length. A zero-length vector is
// returned unchanged.
func (v *Vector3) Normalize() (*Vector3, error) {
	return v.SetLength(1)
}

// AngleBetween returns the angle to other in degrees.
// The result is NaN when either vector has zero length; this degeneracy is
// accepted, not guarded.
func (v *Vector3) AngleBetween(other *Vector3) float64 {
	cos := v.Dot(other) / (v.Length() * other.Length())
	return radToDeg(math.Acos(cos))
}

// DistanceTo returns the Euclidean distance to other.
func (v *Vector3) DistanceTo(other *Vector3) float64 {
	dx := other.x - v.x
	dy := other.y - v.y
	dz := other.z - v.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DirectionTo returns a new unit vector pointing from v toward other.
// When both points coincide the zero vector is returned.
func (v *Vector3) DirectionTo(other *Vector3) (*Vector3, error) {
	d, err := other.Clone().Subtract(v)
	if err != nil {
		return nil, err
	}
	return d.Normalize()
}

// Project replaces the vector with its projection onto other.
// Projecting onto a zero-length vector fails with ErrDegenerate.
func (v *Vector3) Project(other *Vector3) (*Vector3, error) {
	denom := other.Dot(other)
	if denom == 0 {
		return nil, fmt.Errorf("project: %w", ErrDegenerate)
	}
	k := v.Dot(other) / denom
	return v.store("project", other.x*k, other.y*k, other.z*k)
}

// Reject replaces the vector with its rejection from other, i.e. the
// vector minus its projection onto other.
func (v *Vector3) Reject(other *Vector3) (*Vector3, error) {
	p, err := v.Clone().Project(other)
	if err != nil {
		return nil, fmt.Errorf("reject: %w", err)
	}
	return v.Subtract(p)
}

// Reflect reflects the vector about the given normal: v - 2(v.n)n.
func (v *Vector3) Reflect(normal *Vector3) (*Vector3, error) {
	k := 2 * v.Dot(normal)
	return v.store("reflect", v.x-k*normal.x, v.y-k*normal.y, v.z-k*normal.z)
}

// Lerp interpolates component-wise toward other by t.
func (v *Vector3) Lerp(other *Vector3, t float64) (*Vector3, error) {
	if math.IsNaN(t) {
		return nil, fmt.Errorf("lerp: %w", ErrNaN)
	}
	return v.store("lerp",
		v.x+(other.x-v.x)*t,
		v.y+(other.y-v.y)*t,
		v.z+(other.z-v.z)*t,
	)
}

// Slerp spherically interpolates toward other by s using the angle between
// the two vectors. Parallel or zero-length inputs make the interpolation
// degenerate and fail.
func (v *Vector3) Slerp(other *Vector3, s float64) (*Vector3, error) {
	if math.IsNaN(s) {
		return nil, fmt.Errorf("slerp: %w", ErrNaN)
	}
	theta := degToRad(v.AngleBetween(other))
	sinTheta := math.Sin(theta)
	ka := math.Sin((1-s)*theta) / sinTheta
	kb := math.Sin(s*theta) / sinTheta
	return v.store("slerp",
		ka*v.x+kb*other.x,
		ka*v.y+kb*other.y,
		ka*v.z+kb*other.z,
	)
}

// Clamp clamps each component between the matching components of min and max.
func (v *Vector3) Clamp(min, max *Vector3) (*Vector3, error) {
	return v.store("clamp",
		math.Min(math.Max(v.x, min.x), max.x),
		math.Min(math.Max(v.y, min.y), max.y),
		math.Min(math.Max(v.z, min.z), max.z),
	)
}

// Rotate rotates the vector about an arbitrary axis by the given angle in
// degrees, applying the Rodrigues rotation matrix built from the axis
// components as given. The axis is not normalized.
func (v *Vector3) Rotate(axis *Vector3, angleDegrees float64) (*Vector3, error) {
	if math.IsNaN(angleDegrees) {
		return nil, fmt.Errorf("rotate: %w", ErrNaN)
	}
	sin := math.Sin(degToRad(angleDegrees))
	cos := math.Cos(degToRad(angleDegrees))
	k := 1 - cos
	ax, ay, az := axis.x, axis.y, axis.z

	x := v.x*(cos+ax*ax*k) + v.y*(ax*ay*k-az*sin) + v.z*(ax*az*k+ay*sin)
	y := v.x*(ay*ax*k+az*sin) + v.y*(cos+ay*ay*k) + v.z*(ay*az*k-ax*sin)
	z := v.x*(az*ax*k-ay*sin) + v.y*(az*ay*k+ax*sin) + v.z*(cos+az*az*k)

	return v.store("rotate", x, y, z)
}

// Rotation2D normalizes a clone of the vector and returns the dual-axis
// rotation looking along it: yaw = -atan2(x, z), pitch = -asin(y), degrees.
func (v *Vector3) Rotation2D() (*Rotation2, error) {
	n, err := v.Clone().Normalize()
	if err != nil {
		return nil, fmt.Errorf("rotation 2d: %w", err)
	}
	yaw := radToDeg(-math.Atan2(n.x, n.z))
	pitch := radToDeg(-math.Asin(n.y))
	return NewRotation2(yaw, pitch)
}

// Format substitutes the {x}, {y} and {z} tokens in template with the
// components rendered to the given number of fractional digits.
func (v *Vector3) Format(template string, digits int) string {
	r := strings.NewReplacer(
		"{x}", strconv.FormatFloat(v.x, 'f', digits, 64),
		"{y}", strconv.FormatFloat(v.y, 'f', digits, 64),
		"{z}", strconv.FormatFloat(v.z, 'f', digits, 64),
	)
	return r.Replace(template)
}

// String renders the vector as "(x, y, z)".
func (v *Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.x, v.y, v.z)
}
