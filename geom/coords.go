package geom

import "fmt"

// ObjectCoordinateSystem is the orthonormal basis implied by a triple-axis
// rotation, captured at derivation time. It is a pure derivation of its
// source rotation and is never mutated independently: the source is cloned
// on construction and the cardinal directions are computed on demand.
type ObjectCoordinateSystem struct {
	source  *Rotation3
	x, y, z *Vector3
}

// NewObjectCoordinateSystem derives the basis spanned by rot:
// Z is the rotation's forward direction, X is (Z.z, 0, -Z.x) normalized and
// rotated about Z by the roll angle, Y is Z cross X.
func NewObjectCoordinateSystem(rot *Rotation3) (*ObjectCoordinateSystem, error) {
	source := rot.Clone()

	z, err := source.Direction3D()
	if err != nil {
		return nil, fmt.Errorf("object coordinate system: %w", err)
	}
	x, err := NewVector3(z.z, 0, -z.x)
	if err != nil {
		return nil, fmt.Errorf("object coordinate system: %w", err)
	}
	if _, err := x.Normalize(); err != nil {
		return nil, fmt.Errorf("object coordinate system: %w", err)
	}
	if _, err := x.Rotate(z, source.roll); err != nil {
		return nil, fmt.Errorf("object coordinate system: %w", err)
	}
	y, err := z.Clone().Cross(x)
	if err != nil {
		return nil, fmt.Errorf("object coordinate system: %w", err)
	}

	return &ObjectCoordinateSystem{source: source, x: x, y: y, z: z}, nil
}

// XAxis returns a copy of the basis X axis (the left direction).
func (o *ObjectCoordinateSystem) XAxis() *Vector3 { return o.x.Clone() }

// YAxis returns a copy of the basis Y axis (the up direction).
func (o *ObjectCoordinateSystem) YAxis() *Vector3 { return o.y.Clone() }

// ZAxis returns a copy of the basis Z axis (the forward direction).
func (o *ObjectCoordinateSystem) ZAxis() *Vector3 { return o.z.Clone() }

// Forward returns the source rotation itself.
func (o *ObjectCoordinateSystem) Forward() *Rotation3 {
	return o.source.Clone()
}

// Back returns the rotation looking along the negated forward axis.
func (o *ObjectCoordinateSystem) Back() (*Rotation3, error) {
	negX, err := o.x.Clone().Invert()
	if err != nil {
		return nil, fmt.Errorf("back: %w", err)
	}
	return RotationFromAxes(negX, o.y)
}

// Left returns the rotation looking along the basis X axis.
func (o *ObjectCoordinateSystem) Left() (*Rotation3, error) {
	negZ, err := o.z.Clone().Invert()
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	return RotationFromAxes(negZ, o.y)
}

// Right returns the rotation looking along the negated basis X axis.
func (o *ObjectCoordinateSystem) Right() (*Rotation3, error) {
	return RotationFromAxes(o.z, o.y)
}

// Up returns the rotation looking along the basis Y axis.
func (o *ObjectCoordinateSystem) Up() (*Rotation3, error) {
	negZ, err := o.z.Clone().Invert()
	if err != nil {
		return nil, fmt.Errorf("up: %w", err)
	}
	return RotationFromAxes(o.x, negZ)
}

// Down returns the rotation looking along the negated basis Y axis.
func (o *ObjectCoordinateSystem) Down() (*Rotation3, error) {
	return RotationFromAxes(o.x, o.z)
}
