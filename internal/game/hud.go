package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/effects"
)

const (
	charWidth  = 6 // debug font advance
	panelX     = 20
	statsY     = 110
	skillsY    = 170
	skillWidth = 200
)

var (
	panelColor  = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	borderColor = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slow vertical gradient, drawn in 4px bands
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / float64(h)
		r := uint8(10 + 8*math.Sin(g.colorPhase*0.5+ratio*math.Pi))
		gv := uint8(12 + 6*math.Cos(g.colorPhase*0.3+ratio*math.Pi))
		b := uint8(24 + 10*math.Sin(g.colorPhase*0.7+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), 4, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2,
		color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Soundtrack"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*charWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// compact reports whether a window of this width gets the mobile layout.
func compact(width int) bool { return width <= config.CompactWidth }

// heroTitle is the typed title on wide windows and the whole title on
// compact ones.
func (g *Game) heroTitle(width int) string {
	if compact(width) {
		return g.cfg.Hero.Title
	}
	text := g.title.Visible()
	if g.title.Caret() {
		text += "|"
	}
	return text
}

// drawSections renders the stats and skills panel offscreen and blends it
// in at the fade's opacity.
func (g *Game) drawSections(screen *ebiten.Image) {
	b := screen.Bounds()
	g.sections.fit(b.Dx(), b.Dy())
	g.sections.Clear()
	g.drawStats(g.sections.img)
	g.drawSkills(g.sections.img)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(g.reveal.Alpha()))
	screen.DrawImage(g.sections.img, op)
}

func (g *Game) drawStats(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.heroTitle(screen.Bounds().Dx()), panelX, statsY-24)
	for i, c := range g.counters {
		x := panelX + i*110
		ebitenutil.DebugPrintAt(screen, c.Text(), x, statsY)
		ebitenutil.DebugPrintAt(screen, c.Label, x, statsY+16)
	}
}

func (g *Game) drawSkills(screen *ebiten.Image) {
	for i, b := range g.skills {
		y := skillsY + i*28
		ebitenutil.DebugPrintAt(screen, b.Label, panelX, y)
		trackY := float32(y + 16)
		vector.DrawFilledRect(screen, panelX, trackY, skillWidth, 6, panelColor, false)

		fill := hueColor((g.colorPhase+float64(i)*0.15)*360, 0.6, 0.9, 255)
		vector.DrawFilledRect(screen, panelX, trackY, float32(b.Fill()*skillWidth), 6, fill, false)
	}
}

func (g *Game) drawGallery(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	x := w - 260

	// filter bar
	cats := append([]string{effects.FilterAll}, g.gallery.Categories()...)
	parts := make([]string, 0, len(cats))
	for i, c := range cats {
		label := fmt.Sprintf("%d:%s", i, c)
		if c == g.gallery.Filter() {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(parts, " "), x, config.ButtonY)

	for row, i := range g.gallery.Visible() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("- %s", g.gallery.Item(i).Title), x, config.ButtonY+20+row*16)
	}

	art, ok := g.gallery.Current()
	if !ok {
		return
	}
	// lightbox
	sw, sh := float32(w), float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, sw, sh, color.RGBA{A: 180}, false)
	bw, bh := float32(360), float32(90)
	bx, by := (sw-bw)/2, (sh-bh)/2
	vector.DrawFilledRect(screen, bx, by, bw, bh, panelColor, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 2, borderColor, false)
	ebitenutil.DebugPrintAt(screen, art.Title, int(bx)+12, int(by)+12)
	ebitenutil.DebugPrintAt(screen, art.Description, int(bx)+12, int(by)+32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d  <- ->  Esc", g.gallery.Index()+1, g.gallery.Len()), int(bx)+12, int(by)+60)
}

func (g *Game) drawMeter(screen *ebiten.Image) {
	if !g.player.playing() {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	barWidth := w - 2*panelX
	barY := h - config.MeterHeight - 20
	segmentWidth := float64(barWidth) / config.MeterBands

	vector.DrawFilledRect(screen, panelX, float32(barY), float32(barWidth), config.MeterHeight, panelColor, false)
	vector.StrokeRect(screen, panelX, float32(barY), float32(barWidth), config.MeterHeight, 2, borderColor, false)

	for i, level := range g.player.levels(config.MeterBands) {
		segmentX := float64(panelX) + float64(i)*segmentWidth
		segmentHeight := max(level*float64(config.MeterHeight-6), 2)

		segmentColor := hueColor((g.colorPhase+float64(i)/config.MeterBands*0.5)*360, 0.8, 0.9, uint8(100+155*level))

		segmentY := float64(barY) + float64(config.MeterHeight) - segmentHeight
		vector.DrawFilledRect(screen, float32(segmentX), float32(segmentY), float32(segmentWidth-1), float32(segmentHeight), segmentColor, false)
	}

	label := formatDuration(g.player.position) + " / " + formatDuration(g.player.duration)
	ebitenutil.DebugPrintAt(screen, label, panelX, barY-16)
}

func (g *Game) drawFollower(screen *ebiten.Image) {
	// hidden on compact windows, like the mobile layout
	if compact(screen.Bounds().Dx()) {
		return
	}
	vector.StrokeCircle(screen, float32(g.follower.X), float32(g.follower.Y), 14, 1.5,
		color.NRGBA{R: 100, G: 255, B: 218, A: 160}, true)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "Enter: gallery  0-3: filter  P: pause field  R: reseed  Space: pause track  Q: quit"
	if g.sim != nil {
		st := g.sim.Stats()
		state := "running"
		if !g.sim.Running() {
			state = "stopped"
		}
		status = fmt.Sprintf("field %s, %d links | %s", state, st.Links, status)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// hueColor converts HSV (hue in degrees, s and v in [0,1]) to a
// non-premultiplied colour with alpha a.
func hueColor(h, s, v float64, a uint8) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var rgb [3]float64
	switch int(h / 60) {
	case 0:
		rgb = [3]float64{chroma, x, 0}
	case 1:
		rgb = [3]float64{x, chroma, 0}
	case 2:
		rgb = [3]float64{0, chroma, x}
	case 3:
		rgb = [3]float64{0, x, chroma}
	case 4:
		rgb = [3]float64{x, 0, chroma}
	default:
		rgb = [3]float64{chroma, 0, x}
	}
	return color.NRGBA{
		R: uint8((rgb[0] + m) * 255),
		G: uint8((rgb[1] + m) * 255),
		B: uint8((rgb[2] + m) * 255),
		A: a,
	}
}
