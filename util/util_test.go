package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seedgo/numrange"
	"github.com/hupe1980/seedgo/rng"
)

func TestRandomVectors(t *testing.T) {
	v, err := RandomVectors(rng.NewXorshift32(4711), 8, numrange.MustMinMaxFinite(0, 1))
	require.NoError(t, err)

	assert.Len(t, v, 8)
	for _, vec := range v {
		assert.GreaterOrEqual(t, vec.X(), 0.0)
		assert.LessOrEqual(t, vec.X(), 1.0)
		assert.GreaterOrEqual(t, vec.Y(), 0.0)
		assert.LessOrEqual(t, vec.Y(), 1.0)
		assert.GreaterOrEqual(t, vec.Z(), 0.0)
		assert.LessOrEqual(t, vec.Z(), 1.0)
	}
}

func TestRandomVectorsDeterministic(t *testing.T) {
	r := numrange.MustMinMaxFinite(-10, 10)

	a, err := RandomVectors(rng.NewXorshift128Plus(1, 2), 16, r)
	require.NoError(t, err)
	b, err := RandomVectors(rng.NewXorshift128Plus(1, 2), 16, r)
	require.NoError(t, err)

	for i := range a {
		assert.True(t, a[i].Equals(b[i]))
	}
}

func TestRandomRotations(t *testing.T) {
	rotations, err := RandomRotations(rng.NewXorshift32(42), 8)
	require.NoError(t, err)

	assert.Len(t, rotations, 8)
	for _, rot := range rotations {
		assert.GreaterOrEqual(t, rot.Yaw(), -180.0)
		assert.LessOrEqual(t, rot.Yaw(), 180.0)
		assert.GreaterOrEqual(t, rot.Pitch(), -90.0)
		assert.LessOrEqual(t, rot.Pitch(), 90.0)
		assert.GreaterOrEqual(t, rot.Roll(), -180.0)
		assert.LessOrEqual(t, rot.Roll(), 180.0)
	}
}
