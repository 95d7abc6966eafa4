package particle

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

func collect(f *Field, grid bool) []Link {
	var out []Link
	fn := func(l Link) { out = append(out, l) }
	if grid {
		f.LinksGrid(fn)
	} else {
		f.Links(fn)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}

func TestLinkThreshold(t *testing.T) {
	tests := []struct {
		name string
		b    Particle
		want bool
	}{
		{"exactly at threshold", Particle{X: 160, Y: 180}, false}, // 60-80-100 triangle
		{"just inside", Particle{X: 199.9, Y: 100}, true},
		{"far apart", Particle{X: 400, Y: 400}, false},
		{"same point", Particle{X: 100, Y: 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := stillPair(t, Particle{X: 100, Y: 100}, tt.b)
			for _, grid := range []bool{false, true} {
				links := collect(f, grid)
				if got := len(links) == 1; got != tt.want {
					t.Errorf("grid=%v: expected link=%v, got %d links", grid, tt.want, len(links))
				}
			}
		})
	}
}

func TestLinkAlphaFormula(t *testing.T) {
	f := stillPair(t, Particle{X: 100, Y: 100}, Particle{X: 150, Y: 100})

	links := collect(f, false)

	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}
	if math.Abs(links[0].Distance-50) > 1e-12 {
		t.Errorf("expected distance 50, got %v", links[0].Distance)
	}
	if math.Abs(links[0].Alpha-0.1) > 1e-12 {
		t.Errorf("expected alpha 0.1, got %v", links[0].Alpha)
	}
}

func TestLinkAlpha(t *testing.T) {
	tests := []struct {
		d, want float64
	}{
		{0, 0.2},
		{50, 0.1},
		{75, 0.05},
		{100, 0},
		{150, 0},
	}
	for _, tt := range tests {
		if got := LinkAlpha(tt.d, 100, 0.2); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LinkAlpha(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestCloserPairsDrawMoreOpaqueLines(t *testing.T) {
	f := seededField(t, 800, 600, 3, 1)
	f.Set(0, Particle{X: 100, Y: 100, Radius: 1})
	f.Set(1, Particle{X: 110, Y: 100, Radius: 1})
	f.Set(2, Particle{X: 205, Y: 100, Radius: 1})
	s := &recordingSurface{}

	f.Draw(s)

	if len(s.lines) != 2 {
		t.Fatalf("expected 2 lines (0-1, 1-2), got %d", len(s.lines))
	}
	if s.lines[0].clr.A <= s.lines[1].clr.A {
		t.Errorf("expected the 10px link to be more opaque than the 95px link: %d vs %d",
			s.lines[0].clr.A, s.lines[1].clr.A)
	}
}

func TestGridMatchesPairwise(t *testing.T) {
	tests := []struct {
		w, h, n int
		seed    uint64
	}{
		{800, 600, 50, 1},
		{800, 600, 200, 2},
		{1024, 512, 120, 3},
		{90, 70, 40, 4}, // smaller than one cell
		{1000, 100, 80, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d/n=%d", tt.w, tt.h, tt.n), func(t *testing.T) {
			f := seededField(t, tt.w, tt.h, tt.n, tt.seed)
			for step := 0; step < 20; step++ {
				want := collect(f, false)
				got := collect(f, true)
				if len(got) != len(want) {
					t.Fatalf("step %d: grid found %d links, pairwise %d", step, len(got), len(want))
				}
				for i := range want {
					if got[i].I != want[i].I || got[i].J != want[i].J {
						t.Fatalf("step %d: link %d differs: %+v vs %+v", step, i, got[i], want[i])
					}
					if math.Abs(got[i].Alpha-want[i].Alpha) > 1e-12 {
						t.Fatalf("step %d: alpha differs for %d-%d", step, want[i].I, want[i].J)
					}
				}
				f.Update()
			}
		})
	}
}

func TestGridFallsBackOnTinyLinkDistance(t *testing.T) {
	for _, d := range []float64{1e-3, 1e-9, 1e-10, 3e-10, math.SmallestNonzeroFloat64} {
		t.Run(fmt.Sprint(d), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Count = 50
			opts.LinkDistance = d
			opts.SpatialIndex = true
			f, err := NewField(1000, 1000, opts, NewRand(1))
			if err != nil {
				t.Fatal(err)
			}

			links := 0
			pairs := f.LinksGrid(func(Link) { links++ })
			if pairs != 50*49/2 {
				t.Errorf("expected pairwise fallback over 1225 pairs, got %d", pairs)
			}
			if links != 0 {
				t.Errorf("expected no links at distance %v, got %d", d, links)
			}
		})
	}
}

func TestGridHandlesParticlesOutsideAfterShrink(t *testing.T) {
	f := seededField(t, 800, 600, 100, 9)
	if err := f.Resize(300, 200); err != nil {
		t.Fatal(err)
	}

	want := collect(f, false)
	got := collect(f, true)

	if len(got) != len(want) {
		t.Fatalf("grid found %d links, pairwise %d", len(got), len(want))
	}
}

func TestPairwiseCostIsQuadratic(t *testing.T) {
	for _, n := range []int{10, 50, 200} {
		f := seededField(t, 800, 600, n, 1)
		pairs := f.Links(func(Link) {})
		if want := n * (n - 1) / 2; pairs != want {
			t.Errorf("n=%d: examined %d pairs, want %d", n, pairs, want)
		}
	}
}

func TestGridExaminesFewerPairs(t *testing.T) {
	f := seededField(t, 2000, 2000, 400, 1)

	pairwise := f.Links(func(Link) {})
	grid := f.LinksGrid(func(Link) {})

	if grid >= pairwise {
		t.Errorf("expected grid to examine fewer pairs than %d, got %d", pairwise, grid)
	}
}

func BenchmarkStep(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		for _, grid := range []bool{false, true} {
			b.Run(fmt.Sprintf("n=%d/grid=%v", n, grid), func(b *testing.B) {
				opts := DefaultOptions()
				opts.Count = n
				opts.SpatialIndex = grid
				sim, err := NewSimulator(box{800, 600}, opts, NewRand(1))
				if err != nil {
					b.Fatal(err)
				}
				s := &recordingSurface{}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sim.Step(s)
				}
			})
		}
	}
}
