// Package noise provides deterministic gradient (Perlin) noise. A
// generator builds its permutation table once from a PRNG engine and is
// immutable afterwards: two generators built from equally seeded engines
// produce identical noise fields.
package noise

import (
	"fmt"
	"math"

	"github.com/hupe1980/seedgo/numrange"
	"github.com/hupe1980/seedgo/rng"
)

// Options control the shape of the sampled noise field.
type Options struct {
	// Amplitude scales the final interpolated value.
	Amplitude float64

	// Frequency scales the sample coordinates before lattice lookup.
	Frequency float64
}

// DefaultOptions samples the raw noise field.
var DefaultOptions = Options{Amplitude: 1, Frequency: 1}

// tableSize is the lattice period. The table is logically doubled so
// corner hashing never needs an explicit wrap.
const tableSize = 256

// Perlin produces continuous 1D/2D/3D gradient noise.
type Perlin struct {
	perm    [tableSize * 2]int
	offsetX float64
	offsetY float64
	offsetZ float64
}

// New builds a noise generator from a PRNG engine. A per-axis offset in
// [0, 256) shifts all samples off the lattice points, then a 256-entry
// table is filled with uniform draws in [0, 255] and Fisher-Yates shuffled
// over the same engine, mirrored into the upper half.
func New(g rng.Generator) (*Perlin, error) {
	p := &Perlin{}

	offsetRange := numrange.MustMinMaxFinite(0, tableSize-1)
	var err error
	if p.offsetX, err = g.DrawReal(offsetRange); err != nil {
		return nil, fmt.Errorf("noise offset: %w", err)
	}
	if p.offsetY, err = g.DrawReal(offsetRange); err != nil {
		return nil, fmt.Errorf("noise offset: %w", err)
	}
	if p.offsetZ, err = g.DrawReal(offsetRange); err != nil {
		return nil, fmt.Errorf("noise offset: %w", err)
	}

	entryRange := numrange.MustMinMaxInt(0, tableSize-1)
	for i := 0; i < tableSize; i++ {
		v, err := g.DrawInt(entryRange)
		if err != nil {
			return nil, fmt.Errorf("noise table: %w", err)
		}
		p.perm[i] = int(v)
	}
	for i := tableSize - 1; i > 0; i-- {
		swap, err := g.DrawInt(numrange.MustMinMaxInt(0, int64(i)))
		if err != nil {
			return nil, fmt.Errorf("noise table: %w", err)
		}
		p.perm[i], p.perm[swap] = p.perm[swap], p.perm[i]
	}
	for i := 0; i < tableSize; i++ {
		p.perm[i+tableSize] = p.perm[i]
	}

	return p, nil
}

// Noise3 samples the 3D noise field at (x, y, z).
func (p *Perlin) Noise3(x, y, z float64, o Options) float64 {
	x = x*o.Frequency + p.offsetX
	y = y*o.Frequency + p.offsetY
	z = z*o.Frequency + p.offsetZ

	xi := int(math.Floor(x)) & (tableSize - 1)
	yi := int(math.Floor(y)) & (tableSize - 1)
	zi := int(math.Floor(z)) & (tableSize - 1)

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	aaa := p.perm[p.perm[p.perm[xi]+yi]+zi]
	aba := p.perm[p.perm[p.perm[xi]+yi+1]+zi]
	aab := p.perm[p.perm[p.perm[xi]+yi]+zi+1]
	abb := p.perm[p.perm[p.perm[xi]+yi+1]+zi+1]
	baa := p.perm[p.perm[p.perm[xi+1]+yi]+zi]
	bba := p.perm[p.perm[p.perm[xi+1]+yi+1]+zi]
	bab := p.perm[p.perm[p.perm[xi+1]+yi]+zi+1]
	bbb := p.perm[p.perm[p.perm[xi+1]+yi+1]+zi+1]

	x1 := lerp(u, grad(aaa, xf, yf, zf), grad(baa, xf-1, yf, zf))
	x2 := lerp(u, grad(aba, xf, yf-1, zf), grad(bba, xf-1, yf-1, zf))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad(aab, xf, yf, zf-1), grad(bab, xf-1, yf, zf-1))
	x2 = lerp(u, grad(abb, xf, yf-1, zf-1), grad(bbb, xf-1, yf-1, zf-1))
	y2 := lerp(v, x1, x2)

	return lerp(w, y1, y2) * o.Amplitude
}

// Noise2 samples the 2D noise field, holding z at zero.
func (p *Perlin) Noise2(x, y float64, o Options) float64 {
	return p.Noise3(x, y, 0, o)
}

// Noise1 samples the 1D noise field, holding y and z at zero.
func (p *Perlin) Noise1(x float64, o Options) float64 {
	return p.Noise3(x, 0, 0, o)
}

// fade is the smoothstep-like curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad returns the dot product of the distance vector with one of twelve
// pseudo-gradient directions selected by the low 4 bits of the hash.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
