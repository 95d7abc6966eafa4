package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the HUD can draw a level meter from recently played audio.
// Stream runs on the speaker goroutine, everything else on the frame loop.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// snapshot returns up to the last n recorded samples, oldest first.
func (t *levelTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// bands splits the last window samples into n equal segments and returns a
// compressed RMS level per segment, each in [0,1].
func (t *levelTap) bands(n, window int) []float64 {
	out := make([]float64, n)
	samples := t.snapshot(window)
	if len(samples) == 0 || n == 0 {
		return out
	}
	size := max(1, len(samples)/n)
	for i := 0; i < n; i++ {
		start := i * size
		if start >= len(samples) {
			break
		}
		end := min(start+size, len(samples))

		var sumSquares float64
		for s := start; s < end; s++ {
			mono := (samples[s][0] + samples[s][1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(end-start))
		out[i] = min(math.Pow(rms, 0.3), 1)
	}
	return out
}
