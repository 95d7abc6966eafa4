// Package particle simulates the animated dot field drawn behind the hero content:
// drifting particles that wrap at the edges and link to close neighbours.
package particle

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"
)

var (
	// ErrInvalidDimensions is returned when the container has a zero or negative size.
	ErrInvalidDimensions = errors.New("particle: invalid dimensions")
	// ErrMissingContainer is returned when no host container was supplied.
	ErrMissingContainer = errors.New("particle: missing container")
	// ErrInvalidOptions is returned by Options.Validate.
	ErrInvalidOptions = errors.New("particle: invalid options")
)

// Particle is a single animated point. Velocity is in pixels per frame.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

func (r Range) valid() bool { return finite(r.Min) && finite(r.Max) && r.Min <= r.Max }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// sample draws uniformly from the range.
func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Options are the visual parameters of a field.
type Options struct {
	Count         int
	LinkDistance  float64
	LinkAlpha     float64 // line alpha at distance zero
	LinkWidth     float64
	Color         color.RGBA
	VelocityRange float64 // per axis, velocity is drawn from [-VelocityRange, VelocityRange]
	SizeRange     Range
	OpacityRange  Range
	SpatialIndex  bool // link through a uniform grid instead of the pairwise pass
	Seed          uint64
}

// DefaultOptions returns the stock hero-section look.
func DefaultOptions() Options {
	return Options{
		Count:         50,
		LinkDistance:  100,
		LinkAlpha:     0.2,
		LinkWidth:     1,
		Color:         color.RGBA{R: 100, G: 255, B: 218, A: 255},
		VelocityRange: 0.25,
		SizeRange:     Range{Min: 1, Max: 3},
		OpacityRange:  Range{Min: 0.2, Max: 0.7},
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	switch {
	case o.Count < 0:
		return fmt.Errorf("%w: count %d is negative", ErrInvalidOptions, o.Count)
	case !finite(o.LinkDistance) || o.LinkDistance <= 0:
		return fmt.Errorf("%w: link distance %v must be positive", ErrInvalidOptions, o.LinkDistance)
	case !(o.LinkAlpha >= 0 && o.LinkAlpha <= 1):
		return fmt.Errorf("%w: link alpha %v outside [0,1]", ErrInvalidOptions, o.LinkAlpha)
	case !finite(o.VelocityRange) || o.VelocityRange < 0:
		return fmt.Errorf("%w: velocity range %v is negative", ErrInvalidOptions, o.VelocityRange)
	case !o.SizeRange.valid() || o.SizeRange.Min <= 0:
		return fmt.Errorf("%w: size range %v", ErrInvalidOptions, o.SizeRange)
	case !o.OpacityRange.valid() || o.OpacityRange.Min < 0 || o.OpacityRange.Max > 1:
		return fmt.Errorf("%w: opacity range %v", ErrInvalidOptions, o.OpacityRange)
	}
	return nil
}

// NewRand returns a PCG source for the seed. A zero seed is replaced by the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newParticle(rng *rand.Rand, width, height float64, o Options) Particle {
	v := Range{Min: -o.VelocityRange, Max: o.VelocityRange}
	return Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		VX:      v.sample(rng),
		VY:      v.sample(rng),
		Radius:  o.SizeRange.sample(rng),
		Opacity: o.OpacityRange.sample(rng),
	}
}

// alpha8 converts an opacity in [0,1] to an 8-bit alpha, clamping out-of-range values.
func alpha8(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(a*255 + 0.5)
}
