package particle

import "math"

// maxGridCells bounds the grid allocation; beyond it LinksGrid falls back to Links.
const maxGridCells = 1 << 16

// Link is a pair of particles closer than the link distance. I < J.
type Link struct {
	I, J     int
	Distance float64
	Alpha    float64
}

// LinkAlpha is the line alpha for two particles d apart: base*(1-d/limit),
// zero at or beyond limit.
func LinkAlpha(d, limit, base float64) float64 {
	if d >= limit {
		return 0
	}
	return base * (1 - d/limit)
}

// Links visits every unordered pair once and calls fn for each pair strictly
// closer than the link distance. It returns the number of pairs examined,
// n(n-1)/2.
func (f *Field) Links(fn func(Link)) int {
	limit := f.opts.LinkDistance
	limit2 := limit * limit
	ps := f.particles
	pairs := 0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			pairs++
			dx, dy := ps[i].X-ps[j].X, ps[i].Y-ps[j].Y
			d2 := dx*dx + dy*dy
			if d2 >= limit2 {
				continue
			}
			d := math.Sqrt(d2)
			fn(Link{I: i, J: j, Distance: d, Alpha: LinkAlpha(d, limit, f.opts.LinkAlpha)})
		}
	}
	return pairs
}

// forward neighbours; together with the home cell every adjacent pair of
// cells is visited exactly once.
var gridNeighbours = [...][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// LinksGrid reports the same links as Links, bucketing particles into cells
// of side LinkDistance so only neighbouring cells are compared. Visit order
// differs from Links.
func (f *Field) LinksGrid(fn func(Link)) int {
	limit := f.opts.LinkDistance
	// sized in float64 so a tiny limit cannot overflow the cell count
	cf := max(math.Ceil(float64(f.width)/limit), 1)
	rf := max(math.Ceil(float64(f.height)/limit), 1)
	if !(cf*rf <= maxGridCells) {
		return f.Links(fn)
	}
	cols, rows := int(cf), int(rf)

	n := cols * rows
	if cap(f.cells) < n {
		f.cells = make([][]int, n)
	}
	f.cells = f.cells[:n]
	for i := range f.cells {
		f.cells[i] = f.cells[i][:0]
	}

	cellOf := func(p Particle) (int, int) {
		return clampIndex(int(math.Floor(p.X/limit)), cols), clampIndex(int(math.Floor(p.Y/limit)), rows)
	}
	for i, p := range f.particles {
		cx, cy := cellOf(p)
		f.cells[cy*cols+cx] = append(f.cells[cy*cols+cx], i)
	}

	limit2 := limit * limit
	pairs := 0
	check := func(i, j int) {
		pairs++
		a, b := f.particles[i], f.particles[j]
		dx, dy := a.X-b.X, a.Y-b.Y
		d2 := dx*dx + dy*dy
		if d2 >= limit2 {
			return
		}
		if i > j {
			i, j = j, i
		}
		d := math.Sqrt(d2)
		fn(Link{I: i, J: j, Distance: d, Alpha: LinkAlpha(d, limit, f.opts.LinkAlpha)})
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			home := f.cells[cy*cols+cx]
			for a := 0; a < len(home); a++ {
				for b := a + 1; b < len(home); b++ {
					check(home[a], home[b])
				}
			}
			for _, off := range gridNeighbours {
				nx, ny := cx+off[0], cy+off[1]
				if nx < 0 || nx >= cols || ny >= rows {
					continue
				}
				for _, i := range home {
					for _, j := range f.cells[ny*cols+nx] {
						check(i, j)
					}
				}
			}
		}
	}
	return pairs
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
