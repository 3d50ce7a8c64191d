package seedgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seedgo/rng"
)

func TestChoice(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		_, err = Choice(r, []string{})
		assert.ErrorIs(t, err, ErrEmptyChoice)
	})

	t.Run("Single", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		v, err := Choice(r, []string{"only"})
		require.NoError(t, err)
		assert.Equal(t, "only", v)
	})

	t.Run("MemberOfInput", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(7))
		require.NoError(t, err)
		seq := []int{2, 4, 6, 8}
		for i := 0; i < 200; i++ {
			v, err := Choice(r, seq)
			require.NoError(t, err)
			assert.Contains(t, seq, v)
		}
	})

	t.Run("EventuallyCoversAll", func(t *testing.T) {
		r, err := New(rng.NewXorshift128Plus(1, 2))
		require.NoError(t, err)
		seq := []string{"a", "b", "c"}
		seen := map[string]bool{}
		for i := 0; i < 200; i++ {
			v, err := Choice(r, seq)
			require.NoError(t, err)
			seen[v] = true
		}
		assert.Len(t, seen, 3)
	})
}

func TestShuffledClone(t *testing.T) {
	t.Run("InputUnchanged", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(3))
		require.NoError(t, err)
		in := []int{1, 2, 3, 4, 5}
		_, err = ShuffledClone(r, in)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, in)
	})

	t.Run("Permutation", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(3))
		require.NoError(t, err)
		in := []int{1, 2, 3, 4, 5, 6, 7, 8}
		out, err := ShuffledClone(r, in)
		require.NoError(t, err)
		assert.ElementsMatch(t, in, out)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := New(rng.NewXorshift32(42))
		require.NoError(t, err)
		b, err := New(rng.NewXorshift32(42))
		require.NoError(t, err)

		in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		outA, err := ShuffledClone(a, in)
		require.NoError(t, err)
		outB, err := ShuffledClone(b, in)
		require.NoError(t, err)
		assert.Equal(t, outA, outB)
	})

	t.Run("Empty", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(3))
		require.NoError(t, err)
		out, err := ShuffledClone(r, []int{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestSample(t *testing.T) {
	r, err := New(rng.NewXorshift128Plus(5, 6))
	require.NoError(t, err)

	t.Run("SubsetOfInput", func(t *testing.T) {
		set := []int{10, 20, 30, 40, 50}
		out, err := Sample(r, set, 3)
		require.NoError(t, err)
		require.Len(t, out, 3)
		for _, v := range out {
			assert.Contains(t, set, v)
		}
	})

	t.Run("NoDuplicates", func(t *testing.T) {
		set := []int{1, 2, 3, 4, 5, 6}
		out, err := Sample(r, set, 6)
		require.NoError(t, err)
		assert.ElementsMatch(t, set, out)
	})

	t.Run("Zero", func(t *testing.T) {
		out, err := Sample(r, []int{1, 2, 3}, 0)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("CountTooLarge", func(t *testing.T) {
		_, err := Sample(r, []int{1, 2, 3}, 4)
		var sizeErr *ErrSampleSize
		require.ErrorAs(t, err, &sizeErr)
		assert.Equal(t, 4, sizeErr.Count)
		assert.Equal(t, 3, sizeErr.Size)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		_, err := Sample(r, []int{1, 2, 3}, -1)
		var sizeErr *ErrSampleSize
		assert.ErrorAs(t, err, &sizeErr)
	})
}

func TestWeightedChoice(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		_, err = WeightedChoice(r, map[string]int64{})
		assert.ErrorIs(t, err, ErrEmptyChoice)
	})

	t.Run("InvalidWeight", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		_, err = WeightedChoice(r, map[string]int64{"a": 2, "b": 0})
		var weightErr *ErrInvalidWeight
		require.ErrorAs(t, err, &weightErr)
		assert.Equal(t, int64(0), weightErr.Weight)

		_, err = WeightedChoice(r, map[string]int64{"a": -3})
		assert.True(t, errors.As(err, &weightErr))
	})

	t.Run("SingleKey", func(t *testing.T) {
		r, err := New(rng.NewXorshift32(1))
		require.NoError(t, err)
		v, err := WeightedChoice(r, map[string]int64{"only": 7})
		require.NoError(t, err)
		assert.Equal(t, "only", v)
	})

	t.Run("Deterministic", func(t *testing.T) {
		weights := map[string]int64{"a": 1, "b": 2, "c": 3, "d": 4}

		a, err := New(rng.NewXorshift32(9))
		require.NoError(t, err)
		b, err := New(rng.NewXorshift32(9))
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			va, err := WeightedChoice(a, weights)
			require.NoError(t, err)
			vb, err := WeightedChoice(b, weights)
			require.NoError(t, err)
			assert.Equal(t, va, vb)
		}
	})

	t.Run("FollowsWeights", func(t *testing.T) {
		r, err := New(rng.NewXorshift128Plus(21, 22))
		require.NoError(t, err)

		weights := map[string]int64{"light": 1, "heavy": 3}
		counts := map[string]int{}
		const n = 4000
		for i := 0; i < n; i++ {
			v, err := WeightedChoice(r, weights)
			require.NoError(t, err)
			counts[v]++
		}

		require.Positive(t, counts["light"])
		ratio := float64(counts["heavy"]) / float64(counts["light"])
		assert.Greater(t, ratio, 2.0)
		assert.Less(t, ratio, 4.0)
	})
}
