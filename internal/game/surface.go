package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hero is the window region the particle field fills.
type hero struct {
	width, height int
}

func (h *hero) Bounds() (int, int) { return h.width, h.height }

// ebitenSurface draws the field onto an offscreen image that is composited
// behind the HUD.
type ebitenSurface struct {
	img *ebiten.Image
}

// fit reallocates the backing image when the hero size changed.
func (s *ebitenSurface) fit(width, height int) {
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
}

func (s *ebitenSurface) Clear() { s.img.Clear() }

func (s *ebitenSurface) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), clr, true)
}

func (s *ebitenSurface) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
