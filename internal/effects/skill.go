package effects

import "time"

const (
	// SkillStagger delays each successive bar.
	SkillStagger = 200 * time.Millisecond
	// SkillFillTime is how long one bar takes to fill.
	SkillFillTime = time.Second
)

// SkillBar fills from zero to Level percent after a staggered delay.
type SkillBar struct {
	Label string
	Level int // percent, 0-100

	delay   time.Duration
	elapsed time.Duration
	started bool
}

// NewSkillBars builds bars for the given levels, staggered by index.
func NewSkillBars(labels []string, levels []int) []*SkillBar {
	bars := make([]*SkillBar, len(levels))
	for i, lvl := range levels {
		bars[i] = &SkillBar{Label: labels[i], Level: lvl, delay: time.Duration(i) * SkillStagger}
	}
	return bars
}

func (b *SkillBar) Start() { b.started = true }

func (b *SkillBar) Update(dt time.Duration) {
	if b.started {
		b.elapsed += dt
	}
}

// Fill is the fraction of the full track currently drawn, in [0, Level/100].
func (b *SkillBar) Fill() float64 {
	t := b.elapsed - b.delay
	if !b.started || t <= 0 {
		return 0
	}
	p := float64(t) / float64(SkillFillTime)
	if p > 1 {
		p = 1
	}
	return easeOutCubic(p) * float64(b.Level) / 100
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
