package particle

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
)

// Field is a fixed-size pool of particles inside a width x height box.
type Field struct {
	opts      Options
	width     int
	height    int
	particles []Particle

	// reused by LinksGrid between frames
	cells [][]int
}

// NewField allocates opts.Count particles at random positions inside the box.
// A nil rng is replaced by NewRand(opts.Seed).
func NewField(width, height int, opts Options, rng *rand.Rand) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(opts.Seed)
	}
	f := &Field{opts: opts, width: width, height: height}
	f.Reseed(rng)
	return f, nil
}

// Reseed recreates the whole pool inside the current bounds.
func (f *Field) Reseed(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(f.opts.Seed)
	}
	w, h := float64(f.width), float64(f.height)
	ps := make([]Particle, f.opts.Count)
	for i := range ps {
		ps[i] = newParticle(rng, w, h, f.opts)
	}
	f.particles = ps
}

// Width returns the field width in pixels.
func (f *Field) Width() int { return f.width }

// Height returns the field height in pixels.
func (f *Field) Height() int { return f.height }

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Options returns the options the field was built with.
func (f *Field) Options() Options { return f.opts }

// Particles returns a copy of the pool in order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Set replaces particle i. Used to place particles explicitly.
func (f *Field) Set(i int, p Particle) {
	f.particles[i] = p
}

// Resize updates the bounds only. Particles keep their positions and wrap
// into the new box on the next Update.
func (f *Field) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	f.width, f.height = width, height
	return nil
}

// Update moves every particle by its velocity and wraps it back into the box.
func (f *Field) Update() {
	w, h := float64(f.width), float64(f.height)
	for i := range f.particles {
		p := &f.particles[i]
		p.X = wrap(p.X+p.VX, w)
		p.Y = wrap(p.Y+p.VY, h)
	}
}

// wrap resets to 0 past the far edge and to just under limit past the near one.
// Overflow is not carried.
func wrap(v, limit float64) float64 {
	switch {
	case v >= limit:
		return 0
	case v < 0:
		return math.Nextafter(limit, 0)
	}
	return v
}

// Draw renders particles, then links. It returns the number of links drawn
// and the number of pairs examined.
func (f *Field) Draw(s Surface) (links, pairs int) {
	c := f.opts.Color
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha8(p.Opacity)})
	}

	draw := func(l Link) {
		a, b := f.particles[l.I], f.particles[l.J]
		s.Line(a.X, a.Y, b.X, b.Y, f.opts.LinkWidth, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha8(l.Alpha)})
		links++
	}
	if f.opts.SpatialIndex {
		pairs = f.LinksGrid(draw)
	} else {
		pairs = f.Links(draw)
	}
	return links, pairs
}
