package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
)

var errUnsupportedAudio = errors.New("unsupported file type")

// player plays the optional background track behind the hero.
type player struct {
	log *slog.Logger

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *levelTap
	smoothed    []float64

	duration time.Duration
	position time.Duration
	paused   bool
	initDone bool

	// set from the speaker goroutine when the track runs out
	ended atomic.Bool
}

func newPlayer(log *slog.Logger) *player {
	return &player{log: log}
}

func (p *player) playing() bool { return p.streamer != nil }

func decodeAudio(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", errUnsupportedAudio, ext)
	}
}

// openDialog asks for a file and plays it. Cancelling is not an error.
func (p *player) openDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return p.load(filename)
}

func (p *player) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decodeAudio(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	// streamer -> tap -> ctrl
	t := newLevelTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.release()

	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false
	p.ended.Store(false)
	p.duration = format.SampleRate.D(streamer.Len())
	p.position = 0

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.ended.Store(true)
	})))
	p.log.Info("soundtrack playing", "file", filepath.Base(path), "duration", formatDuration(p.duration))
	return nil
}

func (p *player) togglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// advance tracks the play position and closes the track once it has ended.
func (p *player) advance(dt time.Duration) {
	if p.ended.Swap(false) {
		p.log.Debug("soundtrack ended")
		p.release()
		return
	}
	if p.streamer == nil || p.paused {
		return
	}
	p.position = min(p.position+dt, p.duration)
}

// levels returns n meter bands smoothed against the previous call, all zero
// when nothing is playing.
func (p *player) levels(n int) []float64 {
	if p.tap == nil {
		p.smoothed = nil
		return make([]float64, n)
	}
	if len(p.smoothed) != n {
		p.smoothed = make([]float64, n)
	}
	for i, v := range p.tap.bands(n, 2048) {
		p.smoothed[i] = config.SmoothingFactor*p.smoothed[i] + (1-config.SmoothingFactor)*v
	}
	return p.smoothed
}

func (p *player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.duration = 0
	p.position = 0
}

// close stops playback for shutdown.
func (p *player) close() {
	if p.initDone {
		speaker.Clear()
	}
	p.release()
}

// formatDuration renders d as MM:SS.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
