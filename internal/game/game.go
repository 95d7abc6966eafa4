// Package game hosts the particle field in an ebiten window, behind the
// portfolio hero: stat counters, skill bars, gallery lightbox and soundtrack.
package game

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/effects"
	"github.com/iburimskiy/particle-field/internal/particle"
)

const followerEase = 0.15

type Game struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time

	// field
	hero     *hero
	sim      *particle.Simulator
	simTried bool
	applied  [2]int // last size forwarded to the simulator
	throttle *effects.Throttle
	surface  *ebitenSurface

	// foreground
	title    *effects.Typewriter
	reveal   *effects.Fade
	sections *ebitenSurface
	counters []*effects.Counter
	skills   []*effects.SkillBar
	gallery  *effects.Gallery
	follower *effects.Follower
	player   *player

	// input
	cursorX, cursorY int
	buttonHovered    bool
	buttonPressed    bool

	colorPhase float64
	lastErr    error
}

func New(cfg *config.Config, log *slog.Logger) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		throttle: effects.NewThrottle(config.ResizeThrottleMillis * time.Millisecond),
		surface:  &ebitenSurface{},
		sections: &ebitenSurface{},
		title:    effects.NewTypewriter(cfg.Hero.Title),
		follower: effects.NewFollower(followerEase),
		player:   newPlayer(log),
	}

	for _, s := range cfg.Hero.Stats {
		g.counters = append(g.counters, effects.NewCounter(s.Label, s.Target, s.Plus))
	}
	labels := make([]string, len(cfg.Hero.Skills))
	levels := make([]int, len(cfg.Hero.Skills))
	for i, s := range cfg.Hero.Skills {
		labels[i], levels[i] = s.Label, s.Level
	}
	g.skills = effects.NewSkillBars(labels, levels)
	g.reveal = effects.NewFade(effects.FadeIn, g.startSections)
	art := make([]effects.Artwork, len(cfg.Hero.Gallery))
	for i, a := range cfg.Hero.Gallery {
		art[i] = effects.Artwork{Title: a.Title, Description: a.Description, Category: a.Category}
	}
	g.gallery = effects.NewGallery(art)
	return g
}

// startSections kicks off the counters and skill bars once their panel
// has faded in.
func (g *Game) startSections() {
	for _, c := range g.counters {
		c.Start()
	}
	for _, b := range g.skills {
		b.Start()
	}
}

// PlaySoundtrack starts the configured track, if any.
func (g *Game) PlaySoundtrack(path string) {
	if path == "" {
		return
	}
	if err := g.player.load(path); err != nil {
		g.lastErr = err
		g.log.Warn("soundtrack not loaded", "file", path, "err", err)
	}
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// advance runs everything in a tick that does not read input.
func (g *Game) advance(dt time.Duration) {
	g.ensureSimulator()
	g.applyResize()

	g.title.Update(dt)
	g.reveal.Update(dt)
	for _, c := range g.counters {
		c.Update(dt)
	}
	for _, b := range g.skills {
		b.Update(dt)
	}
	g.follower.Update(float64(g.cursorX), float64(g.cursorY))
	g.player.advance(dt)
	g.colorPhase += config.ColorShiftSpeed
}

// ensureSimulator makes the one attempt to start the field. Failure leaves
// the hero without a backdrop.
func (g *Game) ensureSimulator() {
	if g.simTried {
		return
	}
	g.simTried = true

	var c particle.Container
	if g.hero != nil {
		c = g.hero
	}
	opts := g.cfg.Options()
	sim, err := particle.NewSimulator(c, opts, nil)
	if err != nil {
		g.log.Warn("particle field disabled", "err", err)
		return
	}
	g.sim = sim
	w, h := g.hero.Bounds()
	g.applied = [2]int{w, h}
	g.log.Info("particle field started",
		"particles", opts.Count, "width", w, "height", h, "grid", opts.SpatialIndex)
}

// applyResize forwards the hero size to the simulator, at most once per
// throttle window. A blocked size stays pending and is retried next tick.
func (g *Game) applyResize() {
	if g.sim == nil || g.hero == nil {
		return
	}
	w, h := g.hero.Bounds()
	if g.applied == [2]int{w, h} {
		return
	}
	if !g.throttle.Allow(g.now()) {
		return
	}
	g.applied = [2]int{w, h}
	if err := g.sim.Resize(w, h); err != nil {
		g.log.Debug("resize ignored", "err", err)
		return
	}
	g.log.Debug("field resized", "width", w, "height", h)
}

func (g *Game) handleInput() error {
	g.cursorX, g.cursorY = ebiten.CursorPosition()
	g.buttonHovered = g.cursorX >= config.ButtonX && g.cursorX <= config.ButtonX+config.ButtonWidth &&
		g.cursorY >= config.ButtonY && g.cursorY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.player.openDialog(); err != nil {
				g.lastErr = err
				g.log.Warn("soundtrack not loaded", "err", err)
			}
		}
		g.buttonPressed = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if g.gallery.IsOpen() {
			g.gallery.Close()
			break
		}
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if vis := g.gallery.Visible(); !g.gallery.IsOpen() && len(vis) > 0 {
			g.gallery.Open(vis[0])
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.gallery.Navigate(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.gallery.Navigate(1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.player.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.toggleField()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if g.sim != nil {
			g.sim.Field().Reseed(nil)
		}
	}

	filterKeys := []ebiten.Key{ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, k := range filterKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.selectFilter(i)
		}
	}
	return nil
}

func (g *Game) toggleField() {
	if g.sim == nil {
		return
	}
	if g.sim.Running() {
		g.sim.Stop()
	} else {
		g.sim.Start()
	}
}

// selectFilter maps 0 to all and n to the n-th category.
func (g *Game) selectFilter(n int) {
	if n == 0 {
		g.gallery.SetFilter(effects.FilterAll)
		return
	}
	cats := g.gallery.Categories()
	if n <= len(cats) {
		g.gallery.SetFilter(cats[n-1])
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if g.sim != nil {
		f := g.sim.Field()
		g.surface.fit(f.Width(), f.Height())
		g.sim.Step(g.surface)
		screen.DrawImage(g.surface.img, &ebiten.DrawImageOptions{})
	}

	g.drawButton(screen)
	g.drawSections(screen)
	g.drawGallery(screen)
	g.drawMeter(screen)
	g.drawFollower(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.hero == nil {
		g.hero = &hero{}
	}
	g.hero.width, g.hero.height = outsideWidth, outsideHeight
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close stops the field and the soundtrack.
func (g *Game) Close() {
	if g.sim != nil {
		g.sim.Stop()
	}
	g.player.close()
}
