package starfield

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/starfield/internal/core"
)

func newTestSimulator(seed int64) *Simulator {
	return New(DefaultConfig(), NewCamera(640, 480), rand.New(rand.NewSource(seed)))
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(640, 480)
	if c.X != 320 || c.Y != 240 {
		t.Errorf("NewCamera(640, 480) = %+v, expected {320 240}", c)
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name               string
		x, y, depth, scale int
		expected           core.Point
	}{
		{"identity when depth equals scale", 100, 50, 256, 256, core.Point{X: 100, Y: 50}},
		{"half depth doubles offset", 10, -10, 128, 256, core.Point{X: 20, Y: -20}},
		{"truncates positive", 10, 10, 300, 256, core.Point{X: 8, Y: 8}},
		{"truncates negative toward zero", -10, -7, 300, 256, core.Point{X: -8, Y: -5}},
		{"depth one", 3, -2, 1, 256, core.Point{X: 768, Y: -512}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Project(tc.x, tc.y, tc.depth, tc.scale)
			if got != tc.expected {
				t.Errorf("Project(%d, %d, %d, %d) = %+v, expected %+v",
					tc.x, tc.y, tc.depth, tc.scale, got, tc.expected)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	s := newTestSimulator(1)
	s.Initialize(200)

	if s.Len() != 200 {
		t.Fatalf("Len() = %d, expected 200", s.Len())
	}

	cfg := s.cfg
	for i, st := range s.Stars() {
		if st.X < -cfg.Spread || st.X > cfg.Spread || st.Y < -cfg.Spread || st.Y > cfg.Spread {
			t.Errorf("star %d offset (%d, %d) outside [-%d, %d]", i, st.X, st.Y, cfg.Spread, cfg.Spread)
		}
		if st.Depth != cfg.Scale {
			t.Errorf("star %d depth = %d, expected %d", i, st.Depth, cfg.Scale)
		}
		if st.Speed < cfg.MinSpeed || st.Speed > cfg.MaxSpeed {
			t.Errorf("star %d speed = %d outside [%d, %d]", i, st.Speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
	}
}

func TestAdvanceAndProjectIdentity(t *testing.T) {
	s := newTestSimulator(1)
	s.Initialize(1)
	s.stars[0] = Star{X: 100, Y: 50, Depth: 256, Speed: 3}

	p := s.AdvanceAndProject(0)

	expected := core.Point{X: 100 + 320, Y: 50 + 240}
	if p != expected {
		t.Errorf("AdvanceAndProject() = %+v, expected %+v", p, expected)
	}
	if s.stars[0].Depth != 253 {
		t.Errorf("depth after advance = %d, expected 253", s.stars[0].Depth)
	}
}

func TestAdvanceUsesPreDecrementDepth(t *testing.T) {
	s := newTestSimulator(1)
	s.Initialize(1)
	s.stars[0] = Star{X: 4, Y: -4, Depth: 2, Speed: 6}

	p := s.AdvanceAndProject(0)

	// Projected at depth 2 even though the star recycles this frame.
	expected := core.Point{X: 4*256/2 + 320, Y: -4*256/2 + 240}
	if p != expected {
		t.Errorf("AdvanceAndProject() = %+v, expected %+v", p, expected)
	}
	if s.stars[0].Depth != 256 {
		t.Errorf("recycled depth = %d, expected 256", s.stars[0].Depth)
	}
}

func TestDepthInvariant(t *testing.T) {
	s := newTestSimulator(7)
	s.Initialize(64)
	scale := s.cfg.Scale

	var points []core.Point
	for frame := 0; frame < 2000; frame++ {
		points = s.Step(points[:0])
		if len(points) != 64 {
			t.Fatalf("frame %d: Step() returned %d points, expected 64", frame, len(points))
		}
		for i, st := range s.Stars() {
			if st.Depth <= 0 || st.Depth > scale {
				t.Fatalf("frame %d: star %d depth %d outside (0, %d]", frame, i, st.Depth, scale)
			}
		}
	}
}

func TestRecycleDeterminism(t *testing.T) {
	const seed = 12345
	s := newTestSimulator(seed)
	s.Initialize(1)

	// Mirror the simulator's draws with an identical generator.
	mirror := rand.New(rand.NewSource(seed))
	cfg := s.cfg
	spread := func() int { return mirror.Intn(2*cfg.Spread+1) - cfg.Spread }
	speed := func() int { return cfg.MinSpeed + mirror.Intn(cfg.MaxSpeed-cfg.MinSpeed+1) }

	want := Star{X: spread(), Y: spread(), Depth: cfg.Scale, Speed: speed()}
	if got := s.Stars()[0]; got != want {
		t.Fatalf("initial star = %+v, expected %+v", got, want)
	}

	recycles := 0
	for recycles < 5 {
		depth := want.Depth - want.Speed
		s.AdvanceAndProject(0)
		if depth <= 0 {
			want = Star{X: spread(), Y: spread(), Depth: cfg.Scale, Speed: speed()}
			recycles++
		} else {
			want.Depth = depth
		}
		if got := s.Stars()[0]; got != want {
			t.Fatalf("after %d recycles star = %+v, expected %+v", recycles, got, want)
		}
	}
}

func TestSameSeedSameField(t *testing.T) {
	a := newTestSimulator(99)
	b := newTestSimulator(99)
	a.Initialize(32)
	b.Initialize(32)

	for frame := 0; frame < 300; frame++ {
		pa := a.Step(nil)
		pb := b.Step(nil)
		for i := range pa {
			if pa[i] != pb[i] {
				t.Fatalf("frame %d star %d: %+v != %+v", frame, i, pa[i], pb[i])
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"zero scale", Config{Scale: 0, Spread: 10, MinSpeed: 1, MaxSpeed: 6}, true},
		{"negative spread", Config{Scale: 256, Spread: -1, MinSpeed: 1, MaxSpeed: 6}, true},
		{"zero min speed", Config{Scale: 256, Spread: 10, MinSpeed: 0, MaxSpeed: 6}, true},
		{"inverted speeds", Config{Scale: 256, Spread: 10, MinSpeed: 5, MaxSpeed: 2}, true},
		{"single speed", Config{Scale: 256, Spread: 0, MinSpeed: 3, MaxSpeed: 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
