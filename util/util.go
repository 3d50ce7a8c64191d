// Package util provides helpers for generating deterministic test and
// benchmark data over a seeded engine.
package util

import (
	"github.com/hupe1980/seedgo/geom"
	"github.com/hupe1980/seedgo/numrange"
	"github.com/hupe1980/seedgo/rng"
)

var (
	yawRange   = numrange.MustMinMaxFinite(-180, 180)
	pitchRange = numrange.MustMinMaxFinite(-90, 90)
	rollRange  = numrange.MustMinMaxFinite(-180, 180)
)

// RandomVectors generates num vectors whose components are drawn uniformly
// from r. Equal engines give equal vectors.
func RandomVectors(g rng.Generator, num int, r numrange.Finite) ([]*geom.Vector3, error) {
	vectors := make([]*geom.Vector3, num)
	for i := range vectors {
		x, err := g.DrawReal(r)
		if err != nil {
			return nil, err
		}
		y, err := g.DrawReal(r)
		if err != nil {
			return nil, err
		}
		z, err := g.DrawReal(r)
		if err != nil {
			return nil, err
		}
		v, err := geom.NewVector3(x, y, z)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}

	return vectors, nil
}

// RandomRotations generates num rotations with yaw and roll drawn from
// [-180, 180] and pitch from [-90, 90] degrees.
func RandomRotations(g rng.Generator, num int) ([]*geom.Rotation3, error) {
	rotations := make([]*geom.Rotation3, num)
	for i := range rotations {
		yaw, err := g.DrawReal(yawRange)
		if err != nil {
			return nil, err
		}
		pitch, err := g.DrawReal(pitchRange)
		if err != nil {
			return nil, err
		}
		roll, err := g.DrawReal(rollRange)
		if err != nil {
			return nil, err
		}
		rot, err := geom.NewRotation3(yaw, pitch, roll)
		if err != nil {
			return nil, err
		}
		rotations[i] = rot
	}

	return rotations, nil
}
