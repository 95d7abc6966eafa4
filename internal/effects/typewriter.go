package effects

import "time"

const (
	// TypeDelay holds the title back before the first character appears.
	TypeDelay = 100 * time.Millisecond
	// TypeDuration is how long the full title takes to type out.
	TypeDuration = 3500 * time.Millisecond
	// CaretBlink is one on/off period of the caret.
	CaretBlink = 750 * time.Millisecond

	typeSteps = 40
)

// Typewriter reveals Text in typeSteps equal jumps, followed by a blinking
// caret that keeps blinking once the text is complete.
type Typewriter struct {
	Text string

	runes   []rune
	elapsed time.Duration
}

func NewTypewriter(text string) *Typewriter {
	return &Typewriter{Text: text, runes: []rune(text)}
}

func (t *Typewriter) Update(dt time.Duration) { t.elapsed += dt }

// Done reports whether every character is shown.
func (t *Typewriter) Done() bool { return t.elapsed-TypeDelay >= TypeDuration }

// Visible is the typed prefix, cut on rune boundaries.
func (t *Typewriter) Visible() string {
	p := t.elapsed - TypeDelay
	if p <= 0 {
		return ""
	}
	step := min(int(p*typeSteps/TypeDuration), typeSteps)
	return string(t.runes[:len(t.runes)*step/typeSteps])
}

// Caret reports whether the caret is drawn this frame. It starts lit.
func (t *Typewriter) Caret() bool {
	p := t.elapsed - TypeDelay
	if p < 0 {
		return false
	}
	return p%CaretBlink < CaretBlink/2
}
