package particle

import (
	"fmt"
	"math/rand/v2"
)

// Container is the host region the field fills.
type Container interface {
	Bounds() (width, height int)
}

// Stats describes the most recent frame.
type Stats struct {
	Frames uint64
	Links  int
	Pairs  int
}

// Simulator drives a Field one host frame at a time. It never schedules
// itself: the host calls Step from its refresh callback, and Stop ends the
// chain by turning Step into a no-op.
type Simulator struct {
	field   *Field
	running bool
	stats   Stats
}

// NewSimulator sizes a field to the container and starts it running.
func NewSimulator(c Container, opts Options, rng *rand.Rand) (*Simulator, error) {
	if c == nil {
		return nil, ErrMissingContainer
	}
	w, h := c.Bounds()
	f, err := NewField(w, h, opts, rng)
	if err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}
	return &Simulator{field: f, running: true}, nil
}

// Step runs one frame: clear, move, draw particles, draw links. It reports
// whether a frame was produced.
func (s *Simulator) Step(dst Surface) bool {
	if !s.running {
		return false
	}
	dst.Clear()
	s.field.Update()
	links, pairs := s.field.Draw(dst)
	s.stats = Stats{Frames: s.stats.Frames + 1, Links: links, Pairs: pairs}
	return true
}

// Resize forwards new container bounds to the field.
func (s *Simulator) Resize(width, height int) error {
	return s.field.Resize(width, height)
}

// Start resumes stepping. It is a no-op on a running simulator.
func (s *Simulator) Start() { s.running = true }

// Stop halts the loop: later Step calls neither move nor draw particles.
// Stopping twice is harmless.
func (s *Simulator) Stop() { s.running = false }

// Running reports whether Step advances the field.
func (s *Simulator) Running() bool { return s.running }

// Stats returns the frame count and the link counts of the last frame.
func (s *Simulator) Stats() Stats { return s.stats }

// Field returns the simulated field.
func (s *Simulator) Field() *Field { return s.field }
