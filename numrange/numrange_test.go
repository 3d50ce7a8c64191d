package numrange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntConstructors(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		r := ExactInt(5)
		min, ok := r.Min()
		require.True(t, ok)
		assert.Equal(t, int64(5), min)
		max, ok := r.Max()
		require.True(t, ok)
		assert.Equal(t, int64(5), max)
	})

	t.Run("MinOnly", func(t *testing.T) {
		r := MinInt(3)
		_, ok := r.Max()
		assert.False(t, ok)
		assert.False(t, r.Bounded())
	})

	t.Run("MaxOnly", func(t *testing.T) {
		r := MaxInt(3)
		_, ok := r.Min()
		assert.False(t, ok)
	})

	t.Run("MinMax", func(t *testing.T) {
		r, err := MinMaxInt(0, 10)
		require.NoError(t, err)
		assert.True(t, r.Bounded())
	})

	t.Run("Inverted", func(t *testing.T) {
		_, err := MinMaxInt(10, 0)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})
}

func TestIntClamp(t *testing.T) {
	tests := []struct {
		name     string
		r        Int
		value    int64
		expected int64
	}{
		{"Above", MustMinMaxInt(0, 10), 15, 10},
		{"Below", MustMinMaxInt(0, 10), -5, 0},
		{"Inside", MustMinMaxInt(0, 10), 7, 7},
		{"MinOnly", MinInt(3), -5, 3},
		{"MaxOnly", MaxInt(3), 5, 3},
		{"Unbounded", Int{}, 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.r.Clamp(tt.value))
		})
	}
}

func TestIntContains(t *testing.T) {
	r := MustMinMaxInt(0, 10)
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(10))
	assert.False(t, r.Contains(11))
	assert.False(t, r.Contains(-1))
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Exact", "5", "5", false},
		{"MinMax", "0..10", "0..10", false},
		{"MinOnly", "3..", "3..", false},
		{"MaxOnly", "..7", "..7", false},
		{"Negative", "-5..-1", "-5..-1", false},
		{"Spaces", " 0 .. 10 ", "0..10", false},
		{"Empty", "", "", true},
		{"Dots", "..", "", true},
		{"Garbage", "a..b", "", true},
		{"Inverted", "10..0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestFinite(t *testing.T) {
	t.Run("ClampBelow", func(t *testing.T) {
		r := MustMinMaxFinite(0, 1)
		assert.Equal(t, 0.0, r.Clamp(-0.5))
	})

	t.Run("ClampAbove", func(t *testing.T) {
		r := MustMinMaxFinite(0, 1)
		assert.Equal(t, 1.0, r.Clamp(2.5))
	})

	t.Run("ClampInside", func(t *testing.T) {
		r := MustMinMaxFinite(0, 1)
		assert.Equal(t, 0.25, r.Clamp(0.25))
	})

	t.Run("NaNBound", func(t *testing.T) {
		_, err := MinMaxFinite(math.NaN(), 1)
		assert.ErrorIs(t, err, ErrNaNBound)

		_, err = ExactFinite(math.NaN())
		assert.ErrorIs(t, err, ErrNaNBound)
	})

	t.Run("Inverted", func(t *testing.T) {
		_, err := MinMaxFinite(1, 0)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("Parse", func(t *testing.T) {
		r, err := ParseFinite("0.5..2.5")
		require.NoError(t, err)
		min, ok := r.Min()
		require.True(t, ok)
		assert.Equal(t, 0.5, min)
		max, ok := r.Max()
		require.True(t, ok)
		assert.Equal(t, 2.5, max)
	})
}

func TestBig(t *testing.T) {
	t.Run("Clamp", func(t *testing.T) {
		r := MustMinMaxBig(10, 20)
		assert.Equal(t, uint64(10), r.Clamp(1))
		assert.Equal(t, uint64(20), r.Clamp(100))
		assert.Equal(t, uint64(15), r.Clamp(15))
	})

	t.Run("FullWord", func(t *testing.T) {
		r := MustMinMaxBig(0, math.MaxUint64)
		assert.Equal(t, uint64(math.MaxUint64), r.Clamp(math.MaxUint64))
	})

	t.Run("Inverted", func(t *testing.T) {
		_, err := MinMaxBig(2, 1)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("ParseRoundTrip", func(t *testing.T) {
		r, err := ParseBig("1..18446744073709551615")
		require.NoError(t, err)
		assert.Equal(t, "1..18446744073709551615", r.String())
	})
}
