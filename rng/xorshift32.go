package rng

import (
	"math"

	"github.com/hupe1980/seedgo/numrange"
)

// Marsaglia's reference constants for the three untouched state words.
const (
	xorshift32Y = 362436069
	xorshift32Z = 521288629
	xorshift32W = 88675123
)

// Xorshift32 is the fast engine: a 32-bit xorshift over four state words
// with a period of 2^128-1.
//
// DrawInt maps the raw word into the requested range via modulo, which
// carries a slight bias for widths that do not evenly divide 2^32. The bias
// is preserved by design; use Xorshift128Plus when a longer period matters.
type Xorshift32 struct {
	x, y, z, w uint32
}

// NewXorshift32 creates a fast engine from a 32-bit seed. A few warm-up
// draws are discarded so small seeds do not bias the first visible outputs.
func NewXorshift32(seed uint32) *Xorshift32 {
	g := &Xorshift32{
		x: seed,
		y: xorshift32Y,
		z: xorshift32Z,
		w: xorshift32W,
	}
	for i := 0; i < warmupDraws; i++ {
		g.next()
	}
	return g
}

// NewXorshift32FromEntropy creates a fast engine seeded from the ambient
// entropy source. The resulting sequence is not reproducible.
func NewXorshift32FromEntropy() *Xorshift32 {
	return NewXorshift32(EntropyUint32())
}

func (g *Xorshift32) next() uint32 {
	t := g.x ^ (g.x << 11)
	g.x, g.y, g.z = g.y, g.z, g.w
	g.w = (g.w ^ (g.w >> 19)) ^ (t ^ (t >> 8))
	return g.w
}

// DrawInt draws an integer uniformly from the given range, both bounds
// inclusive.
func (g *Xorshift32) DrawInt(r numrange.Int) (int64, error) {
	min, max, err := intBounds(r)
	if err != nil {
		return 0, err
	}
	return spanInt(uint64(g.next()), min, max), nil
}

// DrawReal draws a real from the given range by scaling the raw word
// linearly against the maximum unsigned 32-bit value.
func (g *Xorshift32) DrawReal(r numrange.Finite) (float64, error) {
	min, max, err := realBounds(r)
	if err != nil {
		return 0, err
	}
	frac := float64(g.next()) / float64(math.MaxUint32)
	return min + (max-min)*frac, nil
}
