package rng

import (
	"github.com/hupe1980/seedgo/numrange"
)

// realPrecision quantizes 64-bit draws to 10 decimal digits before
// rescaling, trading a little resolution for avoiding floating-point
// division of huge integers.
const realPrecision = 1e10

// Xorshift128Plus is the long-period engine: a 128-bit xorshift-plus over
// two 64-bit words with a period of 2^128-1. All state arithmetic is native
// wrapping uint64; the exact overflow behavior is essential to
// reproducibility.
type Xorshift128Plus struct {
	s0, s1 uint64
}

// NewXorshift128Plus creates a long-period engine from two 64-bit seed
// words. The all-zero pair is invalid xorshift state and is corrected to
// (0, 1). Four warm-up draws are discarded to dilute low-entropy seeds.
func NewXorshift128Plus(s0, s1 uint64) *Xorshift128Plus {
	if s0 == 0 && s1 == 0 {
		s1 = 1
	}
	g := &Xorshift128Plus{s0: s0, s1: s1}
	for i := 0; i < warmupDraws; i++ {
		g.next()
	}
	return g
}

// NewXorshift128PlusFromEntropy creates a long-period engine seeded from
// the ambient entropy source. The resulting sequence is not reproducible.
func NewXorshift128PlusFromEntropy() *Xorshift128Plus {
	return NewXorshift128Plus(EntropyUint64(), EntropyUint64())
}

func (g *Xorshift128Plus) next() uint64 {
	x, y := g.s0, g.s1
	g.s0 = y
	x ^= x << 23
	g.s1 = x ^ y ^ (x >> 18) ^ (y >> 5)
	return g.s1 + y
}

// DrawInt draws an integer uniformly from the given range, both bounds
// inclusive.
func (g *Xorshift128Plus) DrawInt(r numrange.Int) (int64, error) {
	min, max, err := intBounds(r)
	if err != nil {
		return 0, err
	}
	return spanInt(g.next(), min, max), nil
}

// DrawBig draws an unsigned 64-bit integer uniformly from the given range,
// both bounds inclusive.
func (g *Xorshift128Plus) DrawBig(r numrange.Big) (uint64, error) {
	min, okMin := r.Min()
	max, okMax := r.Max()
	if !okMin || !okMax {
		return 0, ErrUnboundedRange
	}
	v := g.next()
	// A wrapped width of 0 means the range spans the full 64-bit word.
	if width := max - min + 1; width != 0 {
		v %= width
	}
	return min + v, nil
}

// DrawReal draws a real from the given range. The 64-bit draw is quantized
// to a fixed decimal precision before rescaling into [min, max].
func (g *Xorshift128Plus) DrawReal(r numrange.Finite) (float64, error) {
	min, max, err := realBounds(r)
	if err != nil {
		return 0, err
	}
	q := g.next() % uint64(realPrecision)
	frac := float64(q) / realPrecision
	return min + (max-min)*frac, nil
}
