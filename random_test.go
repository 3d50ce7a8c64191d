package seedgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seedgo/noise"
	"github.com/hupe1980/seedgo/rng"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(42))
		require.NoError(t, err)
		assert.NotNil(t, r.logger)
		assert.NotNil(t, r.metrics)
		assert.NotNil(t, r.perlin)
	})

	t.Run("Determinism", func(t *testing.T) {
		a, err := New(rng.NewXorshift32(5))
		require.NoError(t, err)
		b, err := New(rng.NewXorshift32(5))
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			ua, err := a.UUID()
			require.NoError(t, err)
			ub, err := b.UUID()
			require.NoError(t, err)
			assert.Equal(t, ua, ub)
		}
	})
}

func TestUUID(t *testing.T) {
	r, err := New(rng.NewXorshift128Plus(42, 1337))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		id, err := r.UUID()
		require.NoError(t, err)

		s := id.String()
		require.Len(t, s, 36)
		assert.Equal(t, byte('4'), s[14])
		assert.Contains(t, "89ab", string(s[19]))
	}
}

func TestChance(t *testing.T) {
	t.Run("ZeroNeverHits", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			hit, err := r.Chance(0)
			require.NoError(t, err)
			assert.False(t, hit)
		}
	})

	t.Run("AboveOneAlwaysHits", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		for i := 0; i < 200; i++ {
			hit, err := r.Chance(1.1)
			require.NoError(t, err)
			assert.True(t, hit)
		}
	})

	t.Run("RoughlyFair", func(t *testing.T) {
		r, err := New(rng.NewXorshift128Plus(3, 4))
		require.NoError(t, err)

		hits := 0
		const n = 4000
		for i := 0; i < n; i++ {
			hit, err := r.Chance(0.5)
			require.NoError(t, err)
			if hit {
				hits++
			}
		}
		assert.InDelta(t, n/2, hits, n/10)
	})
}

func TestSign(t *testing.T) {
	r, err := New(rng.NewXorshift32(9))
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		s, err := r.Sign()
		require.NoError(t, err)
		assert.Contains(t, []int{1, -1}, s)
		seen[s] = true
	}
	assert.Len(t, seen, 2)
}

func TestBoxMuller(t *testing.T) {
	r, err := New(rng.NewXorshift128Plus(7, 8))
	require.NoError(t, err)

	var sum float64
	const n = 4000
	for i := 0; i < n; i++ {
		v, err := r.BoxMuller()
		require.NoError(t, err)
		require.False(t, math.IsNaN(v))
		require.False(t, math.IsInf(v, 0))
		sum += v
	}
	assert.InDelta(t, 0, sum/n, 0.25)
}

func TestRotationDraws(t *testing.T) {
	r, err := New(rng.NewXorshift32(11))
	require.NoError(t, err)

	t.Run("Rotation2", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			rot, err := r.Rotation2()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, rot.Yaw(), -180.0)
			assert.LessOrEqual(t, rot.Yaw(), 180.0)
			assert.GreaterOrEqual(t, rot.Pitch(), -90.0)
			assert.LessOrEqual(t, rot.Pitch(), 90.0)
		}
	})

	t.Run("Rotation3", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			rot, err := r.Rotation3()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, rot.Yaw(), -180.0)
			assert.LessOrEqual(t, rot.Yaw(), 180.0)
			assert.GreaterOrEqual(t, rot.Pitch(), -90.0)
			assert.LessOrEqual(t, rot.Pitch(), 90.0)
			assert.GreaterOrEqual(t, rot.Roll(), -180.0)
			assert.LessOrEqual(t, rot.Roll(), 180.0)
		}
	})
}

func TestNoisePassThrough(t *testing.T) {
	r, err := New(rng.NewXorshift32(42))
	require.NoError(t, err)

	// The facade samples the noise generator it built from the same engine.
	standalone, err := noise.New(rng.NewXorshift32(42))
	require.NoError(t, err)

	assert.Equal(t, standalone.Noise3(1.1, 2.2, 3.3, noise.DefaultOptions), r.Noise3(1.1, 2.2, 3.3, noise.DefaultOptions))
	assert.Equal(t, standalone.Noise2(1.1, 2.2, noise.DefaultOptions), r.Noise2(1.1, 2.2, noise.DefaultOptions))
	assert.Equal(t, standalone.Noise1(1.1, noise.DefaultOptions), r.Noise1(1.1, noise.DefaultOptions))
}

func TestBuilders(t *testing.T) {
	t.Run("FastDeterminism", func(t *testing.T) {
		a := Fast(5).MustBuild()
		b := Fast(5).MustBuild()

		ua, err := a.UUID()
		require.NoError(t, err)
		ub, err := b.UUID()
		require.NoError(t, err)
		assert.Equal(t, ua, ub)
	})

	t.Run("LongPeriodZeroSeed", func(t *testing.T) {
		a := LongPeriod(0, 0).MustBuild()
		b := LongPeriod(0, 1).MustBuild()

		ua, err := a.UUID()
		require.NoError(t, err)
		ub, err := b.UUID()
		require.NoError(t, err)
		assert.Equal(t, ua, ub)
	})

	t.Run("Immutable", func(t *testing.T) {
		base := Fast(5)
		withMetrics := base.Metrics(&BasicMetricsCollector{})

		r, err := base.Build()
		require.NoError(t, err)
		assert.IsType(t, NoopMetricsCollector{}, r.metrics)

		r, err = withMetrics.Build()
		require.NoError(t, err)
		assert.IsType(t, &BasicMetricsCollector{}, r.metrics)
	})
}

func TestMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	r, err := New(rng.NewXorshift32(3), WithMetricsCollector(mc))
	require.NoError(t, err)

	_, err = r.UUID()
	require.NoError(t, err)
	_, err = ShuffledClone(r, []int{1, 2, 3, 4})
	require.NoError(t, err)

	stats := mc.GetStats()
	// 31 drawn nibbles per UUID (the version nibble is fixed) plus 3 swap
	// draws for the shuffle.
	assert.Equal(t, int64(34), stats.DrawCount)
	assert.Equal(t, int64(0), stats.DrawErrors)
	assert.Equal(t, int64(1), stats.ShuffleCount)
	assert.Equal(t, int64(4), stats.ShuffleItems)
	assert.Equal(t, int64(0), stats.ShuffleErrors)
}
