package effects

// Follower trails a target point, closing Ease of the gap each frame.
type Follower struct {
	X, Y float64
	Ease float64

	placed bool
}

func NewFollower(ease float64) *Follower {
	return &Follower{Ease: ease}
}

// Update moves toward (tx, ty). The first call snaps to the target.
func (f *Follower) Update(tx, ty float64) {
	if !f.placed {
		f.X, f.Y = tx, ty
		f.placed = true
		return
	}
	f.X += (tx - f.X) * f.Ease
	f.Y += (ty - f.Y) * f.Ease
}
