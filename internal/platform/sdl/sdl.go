//go:build sdl

// Package sdl is the native backend on SDL2. It is compiled only with the
// "sdl" build tag since it needs cgo and the SDL2 development libraries.
package sdl

import (
	"errors"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/pixel"
	"github.com/vovakirdan/starfield/internal/registry"
)

// Backend is the SDL2 gfx.Backend.
type Backend struct{}

func init() {
	registry.Register("sdl", "Native window (SDL2)", func() gfx.Backend {
		return &Backend{}
	})
}

// Name implements gfx.Backend.
func (b *Backend) Name() string {
	return "sdl"
}

// initFlags maps capability flags to SDL subsystem bits.
func initFlags(f gfx.Flags) uint32 {
	var out uint32
	if f.Has(gfx.FlagTimer) {
		out |= sdl.INIT_TIMER
	}
	if f.Has(gfx.FlagAudio) {
		out |= sdl.INIT_AUDIO
	}
	if f.Has(gfx.FlagVideo) {
		out |= sdl.INIT_VIDEO
	}
	if f.Has(gfx.FlagEvents) {
		out |= sdl.INIT_EVENTS
	}
	return out
}

// Init implements gfx.Backend. SDL must be driven from the thread that
// initialized it, so the calling goroutine is locked to its OS thread.
func (b *Backend) Init(flags gfx.Flags) error {
	runtime.LockOSThread()
	if err := sdl.Init(initFlags(flags)); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Quit implements gfx.Backend.
func (b *Backend) Quit() {
	sdl.Quit()
	runtime.UnlockOSThread()
}

// CreateWindow implements gfx.Backend.
func (b *Backend) CreateWindow(title string, width, height int) (gfx.Window, error) {
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	return &Window{w: w}, nil
}

// LoadBMP implements gfx.Backend.
func (b *Backend) LoadBMP(path string) (gfx.Surface, error) {
	s, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, err
	}
	return &Surface{s: s}, nil
}

// PollEvent implements gfx.Backend. At most one native event is dequeued
// per call; events with no core counterpart come back as core.NoEvent.
func (b *Backend) PollEvent() core.Event {
	ev := sdl.PollEvent()
	if ev == nil {
		return core.NoEvent
	}
	return translate(ev)
}

func translate(ev sdl.Event) core.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return core.QuitEvent()
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return core.Event{Type: core.EventKey, Key: sdl.GetKeyName(e.Keysym.Sym)}
		}
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return core.Event{Type: core.EventResize, W: int(e.Data1), H: int(e.Data2)}
		}
	}
	return core.NoEvent
}

// Delay implements gfx.Backend.
func (b *Backend) Delay(d time.Duration) {
	sdl.Delay(uint32(d / time.Millisecond))
}

// Window wraps *sdl.Window.
type Window struct {
	w *sdl.Window
}

// Size implements gfx.Window.
func (w *Window) Size() (int, int) {
	width, height := w.w.GetSize()
	return int(width), int(height)
}

// CreateRenderer implements gfx.Window.
func (w *Window) CreateRenderer() (gfx.Renderer, error) {
	r, err := sdl.CreateRenderer(w.w, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}
	return &Renderer{r: r}, nil
}

// SetIcon implements gfx.Window.
func (w *Window) SetIcon(s gfx.Surface) error {
	surface, ok := s.(*Surface)
	if !ok {
		return errors.New("icon is not an SDL surface")
	}
	w.w.SetIcon(surface.s)
	return nil
}

// Destroy implements gfx.Window.
func (w *Window) Destroy() error {
	return w.w.Destroy()
}

// Renderer wraps *sdl.Renderer.
type Renderer struct {
	r *sdl.Renderer
}

// SetDrawColor implements gfx.Renderer.
func (r *Renderer) SetDrawColor(c core.Color) error {
	return r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

// Clear implements gfx.Renderer.
func (r *Renderer) Clear() error {
	return r.r.Clear()
}

// DrawPoint implements gfx.Renderer.
func (r *Renderer) DrawPoint(x, y int) error {
	return r.r.DrawPoint(int32(x), int32(y))
}

// Present implements gfx.Renderer.
func (r *Renderer) Present() error {
	r.r.Present()
	return nil
}

// Destroy implements gfx.Renderer.
func (r *Renderer) Destroy() error {
	return r.r.Destroy()
}

// Surface wraps *sdl.Surface. Lock exposes the surface memory directly;
// the buffer is valid only until Unlock.
type Surface struct {
	s *sdl.Surface
}

// Lock implements gfx.Surface.
func (s *Surface) Lock() (*pixel.Buffer, error) {
	if err := s.s.Lock(); err != nil {
		return nil, err
	}
	return &pixel.Buffer{
		Pix:           s.s.Pixels(),
		Pitch:         int(s.s.Pitch),
		BytesPerPixel: int(s.s.Format.BytesPerPixel),
	}, nil
}

// Unlock implements gfx.Surface.
func (s *Surface) Unlock() {
	s.s.Unlock()
}

// SetColorKey implements gfx.Surface.
func (s *Surface) SetColorKey(key uint32) error {
	return s.s.SetColorKey(true, key)
}

// Free implements gfx.Surface.
func (s *Surface) Free() {
	s.s.Free()
}

var (
	_ gfx.Backend  = (*Backend)(nil)
	_ gfx.Window   = (*Window)(nil)
	_ gfx.Renderer = (*Renderer)(nil)
	_ gfx.Surface  = (*Surface)(nil)
)
