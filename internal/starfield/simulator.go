package starfield

import (
	"math/rand"

	"github.com/vovakirdan/starfield/internal/core"
)

// Simulator owns a fixed collection of stars and advances them each frame.
type Simulator struct {
	cfg    Config
	camera Camera
	rng    *rand.Rand
	stars  []Star
}

// New creates a simulator drawing star attributes from rng.
// The generator is owned by the simulator from here on.
func New(cfg Config, camera Camera, rng *rand.Rand) *Simulator {
	return &Simulator{
		cfg:    cfg,
		camera: camera,
		rng:    rng,
	}
}

// Initialize replaces the collection with count freshly randomized stars.
func (s *Simulator) Initialize(count int) {
	s.stars = make([]Star, count)
	for i := range s.stars {
		s.respawn(&s.stars[i])
	}
}

// respawn draws new attributes for st. Draw order is x, y, speed.
func (s *Simulator) respawn(st *Star) {
	st.X = s.randSpread()
	st.Y = s.randSpread()
	st.Depth = s.cfg.Scale
	st.Speed = s.randSpeed()
}

func (s *Simulator) randSpread() int {
	return s.rng.Intn(2*s.cfg.Spread+1) - s.cfg.Spread
}

func (s *Simulator) randSpeed() int {
	return s.cfg.MinSpeed + s.rng.Intn(s.cfg.MaxSpeed-s.cfg.MinSpeed+1)
}

// AdvanceAndProject projects star i using its current depth, then moves it
// one frame closer, recycling it once it reaches the camera.
// The returned point is the one to draw this frame.
func (s *Simulator) AdvanceAndProject(i int) core.Point {
	st := &s.stars[i]

	p := Project(st.X, st.Y, st.Depth, s.cfg.Scale).Add(s.camera.Offset())

	st.Depth -= st.Speed
	if st.Depth <= 0 {
		s.respawn(st)
	}

	return p
}

// Step advances every star in order and appends the projected points to dst.
func (s *Simulator) Step(dst []core.Point) []core.Point {
	for i := range s.stars {
		dst = append(dst, s.AdvanceAndProject(i))
	}
	return dst
}

// Len returns the number of stars.
func (s *Simulator) Len() int {
	return len(s.stars)
}

// Stars returns a copy of the current star states.
func (s *Simulator) Stars() []Star {
	out := make([]Star, len(s.stars))
	copy(out, s.stars)
	return out
}
