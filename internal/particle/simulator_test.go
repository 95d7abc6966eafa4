package particle

import (
	"errors"
	"testing"
)

type box struct{ w, h int }

func (b box) Bounds() (int, int) { return b.w, b.h }

func TestNewSimulatorMissingContainer(t *testing.T) {
	sim, err := NewSimulator(nil, DefaultOptions(), NewRand(1))
	if !errors.Is(err, ErrMissingContainer) {
		t.Fatalf("expected ErrMissingContainer, got %v", err)
	}
	if sim != nil {
		t.Error("expected nil simulator")
	}
}

func TestNewSimulatorInvalidDimensions(t *testing.T) {
	_, err := NewSimulator(box{0, 400}, DefaultOptions(), NewRand(1))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestSimulatorRunsThousandFrames(t *testing.T) {
	sim, err := NewSimulator(box{800, 600}, DefaultOptions(), NewRand(21))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if !sim.Running() {
		t.Fatal("expected a new simulator to be running")
	}
	s := &recordingSurface{}

	for i := 0; i < 1000; i++ {
		if !sim.Step(s) {
			t.Fatalf("frame %d not produced", i)
		}
		assertInBounds(t, sim.Field())
	}

	if s.clears != 1000 {
		t.Errorf("expected 1000 clears, got %d", s.clears)
	}
	if len(s.circles) != 50 {
		t.Errorf("expected 50 circles in the last frame, got %d", len(s.circles))
	}
	st := sim.Stats()
	if st.Frames != 1000 {
		t.Errorf("expected 1000 frames, got %d", st.Frames)
	}
	if st.Pairs != 50*49/2 {
		t.Errorf("expected %d pairs, got %d", 50*49/2, st.Pairs)
	}
	if st.Links != len(s.lines) {
		t.Errorf("stats report %d links, surface saw %d", st.Links, len(s.lines))
	}
}

func TestSimulatorStop(t *testing.T) {
	sim, err := NewSimulator(box{800, 600}, DefaultOptions(), NewRand(2))
	if err != nil {
		t.Fatal(err)
	}
	s := &recordingSurface{}
	sim.Step(s)
	before := sim.Field().Particles()

	sim.Stop()
	for i := 0; i < 10; i++ {
		if sim.Step(s) {
			t.Fatal("expected Step to be a no-op after Stop")
		}
	}

	if s.clears != 1 {
		t.Errorf("expected 1 clear, got %d", s.clears)
	}
	after := sim.Field().Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d moved while stopped", i)
		}
	}

	sim.Start()
	if !sim.Step(s) {
		t.Error("expected Step to resume after Start")
	}
	if sim.Stats().Frames != 2 {
		t.Errorf("expected 2 frames, got %d", sim.Stats().Frames)
	}
}

func TestSimulatorResize(t *testing.T) {
	sim, err := NewSimulator(box{800, 600}, DefaultOptions(), NewRand(4))
	if err != nil {
		t.Fatal(err)
	}

	if err := sim.Resize(1280, 720); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w, h := sim.Field().Width(), sim.Field().Height(); w != 1280 || h != 720 {
		t.Errorf("expected 1280x720, got %dx%d", w, h)
	}
	if err := sim.Resize(-1, 720); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if sim.Field().Len() != 50 {
		t.Errorf("expected 50 particles, got %d", sim.Field().Len())
	}
}
