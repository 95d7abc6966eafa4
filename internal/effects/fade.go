package effects

import "time"

// FadeIn is how long a section takes to become fully opaque.
const FadeIn = 600 * time.Millisecond

// Fade ramps opacity from zero to one over Duration, then calls OnDone once.
type Fade struct {
	Duration time.Duration
	OnDone   func()

	elapsed time.Duration
	fired   bool
}

func NewFade(d time.Duration, onDone func()) *Fade {
	return &Fade{Duration: d, OnDone: onDone}
}

func (f *Fade) Update(dt time.Duration) {
	f.elapsed += dt
	if f.Done() && !f.fired {
		f.fired = true
		if f.OnDone != nil {
			f.OnDone()
		}
	}
}

func (f *Fade) Done() bool { return f.elapsed >= f.Duration }

// Alpha is the current opacity in [0,1], eased out.
func (f *Fade) Alpha() float64 {
	if f.Duration <= 0 || f.Done() {
		return 1
	}
	return easeOutCubic(float64(f.elapsed) / float64(f.Duration))
}
