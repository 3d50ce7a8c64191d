package seedgo

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hupe1980/seedgo/geom"
	"github.com/hupe1980/seedgo/noise"
	"github.com/hupe1980/seedgo/numrange"
	"github.com/hupe1980/seedgo/rng"
)

// Draw ranges shared by the facade operations.
var (
	unitRange    = numrange.MustMinMaxFinite(0, 1)
	yawRange     = numrange.MustMinMaxFinite(-180, 180)
	pitchRange   = numrange.MustMinMaxFinite(-90, 90)
	rollRange    = numrange.MustMinMaxFinite(-180, 180)
	nibbleRange  = numrange.MustMinMaxInt(0, 15)
	variantRange = numrange.MustMinMaxInt(8, 11)
)

// Random wraps a PRNG engine and exposes derived distributions on top of
// its draw capability. It exclusively owns the engine and the gradient
// noise generator it builds from it; all draws flow through the one engine,
// so equal seeds and equal call sequences give equal results.
type Random struct {
	gen     rng.Generator
	perlin  *noise.Perlin
	logger  *Logger
	metrics MetricsCollector
}

// New wraps the given engine. The owned noise generator is built eagerly,
// consuming a fixed prefix of the engine's draw sequence.
func New(g rng.Generator, optFns ...Option) (*Random, error) {
	o := applyOptions(optFns)

	perlin, err := noise.New(g)
	if err != nil {
		return nil, fmt.Errorf("new random: %w", err)
	}

	return &Random{
		gen:     g,
		perlin:  perlin,
		logger:  o.logger,
		metrics: o.metrics,
	}, nil
}

// drawInt funnels every facade integer draw through metrics and logging.
func (r *Random) drawInt(op string, rr numrange.Int) (int64, error) {
	v, err := r.gen.DrawInt(rr)
	r.metrics.RecordDraw(op, err)
	r.logger.LogDraw(op, err)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// drawReal funnels every facade real draw through metrics and logging.
func (r *Random) drawReal(op string, rr numrange.Finite) (float64, error) {
	v, err := r.gen.DrawReal(rr)
	r.metrics.RecordDraw(op, err)
	r.logger.LogDraw(op, err)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// UUID draws an RFC 4122 v4-shaped identifier: the version nibble is fixed
// at 4, the variant nibble is drawn from {8, 9, a, b} and every other
// nibble is drawn uniformly from 0-15.
func (r *Random) UUID() (uuid.UUID, error) {
	var raw [16]byte
	for i := 0; i < 32; i++ {
		var nib int64
		switch i {
		case 12:
			nib = 4
		case 16:
			v, err := r.drawInt("uuid", variantRange)
			if err != nil {
				return uuid.Nil, err
			}
			nib = v
		default:
			v, err := r.drawInt("uuid", nibbleRange)
			if err != nil {
				return uuid.Nil, err
			}
			nib = v
		}
		if i%2 == 0 {
			raw[i/2] |= byte(nib) << 4
		} else {
			raw[i/2] |= byte(nib)
		}
	}
	return uuid.FromBytes(raw[:])
}

// Chance reports true with probability p.
func (r *Random) Chance(p float64) (bool, error) {
	v, err := r.drawReal("chance", unitRange)
	if err != nil {
		return false, err
	}
	return v < p, nil
}

// Sign returns 1 or -1 with equal probability.
func (r *Random) Sign() (int, error) {
	heads, err := r.Chance(0.5)
	if err != nil {
		return 0, err
	}
	if heads {
		return 1, nil
	}
	return -1, nil
}

// BoxMuller draws a standard normally distributed value via the Box-Muller
// transform. Draws of exactly 0 or 1 are resampled, since they would break
// the logarithm and leave the cosine degenerate.
func (r *Random) BoxMuller() (float64, error) {
	u1, err := r.drawOpenUnit()
	if err != nil {
		return 0, err
	}
	u2, err := r.drawOpenUnit()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2), nil
}

func (r *Random) drawOpenUnit() (float64, error) {
	for {
		v, err := r.drawReal("box muller", unitRange)
		if err != nil {
			return 0, err
		}
		if v != 0 && v != 1 {
			return v, nil
		}
	}
}

// Rotation2 draws a uniform dual-axis rotation: yaw in [-180, 180] and
// pitch in [-90, 90] degrees.
func (r *Random) Rotation2() (*geom.Rotation2, error) {
	yaw, err := r.drawReal("rotation2", yawRange)
	if err != nil {
		return nil, err
	}
	pitch, err := r.drawReal("rotation2", pitchRange)
	if err != nil {
		return nil, err
	}
	return geom.NewRotation2(yaw, pitch)
}

// Rotation3 draws a uniform triple-axis rotation: yaw and roll in
// [-180, 180] and pitch in [-90, 90] degrees.
func (r *Random) Rotation3() (*geom.Rotation3, error) {
	yaw, err := r.drawReal("rotation3", yawRange)
	if err != nil {
		return nil, err
	}
	pitch, err := r.drawReal("rotation3", pitchRange)
	if err != nil {
		return nil, err
	}
	roll, err := r.drawReal("rotation3", rollRange)
	if err != nil {
		return nil, err
	}
	return geom.NewRotation3(yaw, pitch, roll)
}

// Noise1 samples the owned gradient noise field in 1D.
func (r *Random) Noise1(x float64, o noise.Options) float64 {
	return r.perlin.Noise1(x, o)
}

// Noise2 samples the owned gradient noise field in 2D.
func (r *Random) Noise2(x, y float64, o noise.Options) float64 {
	return r.perlin.Noise2(x, y, o)
}

// Noise3 samples the owned gradient noise field in 3D.
func (r *Random) Noise3(x, y, z float64, o noise.Options) float64 {
	return r.perlin.Noise3(x, y, z, o)
}
