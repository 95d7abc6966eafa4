// Package effects holds the small timed animations layered over the field:
// stat counters, skill bars, the typed title, section fades, the gallery
// lightbox and the cursor follower.
package effects

import (
	"math"
	"strconv"
	"time"
)

const (
	// CounterTick is how often a counter advances.
	CounterTick = 10 * time.Millisecond
	// counterSteps is the number of ticks a counter takes to reach its target.
	counterSteps = 100
)

// Counter counts up from zero to Target in counterSteps equal increments.
type Counter struct {
	Label  string
	Target int
	Plus   bool // append "+" to the rendered value

	count   float64
	pending time.Duration
	started bool
}

func NewCounter(label string, target int, plus bool) *Counter {
	return &Counter{Label: label, Target: target, Plus: plus}
}

// Start begins counting. Counters stay at zero until started.
func (c *Counter) Start() { c.started = true }

// Update advances the counter by elapsed wall time.
func (c *Counter) Update(dt time.Duration) {
	if !c.started || c.Done() {
		return
	}
	c.pending += dt
	inc := float64(c.Target) / counterSteps
	for c.pending >= CounterTick && !c.Done() {
		c.pending -= CounterTick
		c.count += inc
	}
}

// Done reports whether the counter has reached its target.
func (c *Counter) Done() bool { return c.count >= float64(c.Target) }

// Value is the integer currently shown.
func (c *Counter) Value() int {
	if c.Done() {
		return c.Target
	}
	v := int(math.Ceil(c.count))
	if v > c.Target {
		v = c.Target
	}
	return v
}

// Text renders the value with the optional "+" suffix.
func (c *Counter) Text() string {
	s := strconv.Itoa(c.Value())
	if c.Plus {
		s += "+"
	}
	return s
}
