// Package geom provides a mutable 3-component vector algebra and two
// rotation builder types (dual-axis yaw/pitch and triple-axis
// yaw/pitch/roll, both in degrees), plus the orthonormal basis ("object
// coordinate system") derived from a triple-axis rotation.
//
// All values are freestanding value objects: they are created by a
// constructor or derivation, mutated in place by the listed operations and
// cloned explicitly when an independent snapshot is needed. No component is
// ever NaN; constructors and mutators validate operands and results and
// fail with an invalid-argument error instead of storing NaN. Scalar
// queries on degenerate inputs (AngleBetween on a zero-length vector) yield
// NaN rather than failing; this is a documented edge case.
package geom
