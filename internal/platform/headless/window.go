package headless

import (
	"errors"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
)

// Window is an in-memory gfx.Window.
type Window struct {
	backend   *Backend
	title     string
	width     int
	height    int
	icon      gfx.Surface
	renderer  *Renderer
	destroyed bool
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Size implements gfx.Window.
func (w *Window) Size() (int, int) { return w.width, w.height }

// CreateRenderer implements gfx.Window.
func (w *Window) CreateRenderer() (gfx.Renderer, error) {
	if w.destroyed {
		return nil, errors.New("window destroyed")
	}
	if err := w.backend.fail(OpRenderer); err != nil {
		return nil, err
	}
	w.renderer = &Renderer{
		window: w,
		screen: core.NewScreen(w.width, w.height),
		color:  core.ColorWhite,
	}
	return w.renderer, nil
}

// SetIcon implements gfx.Window.
func (w *Window) SetIcon(icon gfx.Surface) error {
	if err := w.backend.fail(OpSetIcon); err != nil {
		return err
	}
	w.icon = icon
	return nil
}

// Icon returns the assigned icon, or nil.
func (w *Window) Icon() gfx.Surface { return w.icon }

// Destroy implements gfx.Window.
func (w *Window) Destroy() error {
	w.destroyed = true
	return w.backend.fail(OpWindowFree)
}

// Destroyed reports whether Destroy was called.
func (w *Window) Destroyed() bool { return w.destroyed }

// Renderer returns the window's renderer, or nil.
func (w *Window) Renderer() *Renderer { return w.renderer }

// Renderer is an in-memory gfx.Renderer.
type Renderer struct {
	window    *Window
	screen    *core.Screen
	color     core.Color
	points    []core.Point // Points drawn since the last Clear
	presented int
	drawn     int
	destroyed bool
	// destroyedBeforeWindow records release order.
	destroyedBeforeWindow bool
}

// SetDrawColor implements gfx.Renderer.
func (r *Renderer) SetDrawColor(c core.Color) error {
	if err := r.window.backend.fail(OpDrawColor); err != nil {
		return err
	}
	r.color = c
	return nil
}

// Clear implements gfx.Renderer.
func (r *Renderer) Clear() error {
	if err := r.window.backend.fail(OpClear); err != nil {
		return err
	}
	r.screen.Clear(r.color)
	r.points = r.points[:0]
	return nil
}

// DrawPoint implements gfx.Renderer.
func (r *Renderer) DrawPoint(x, y int) error {
	if err := r.window.backend.fail(OpDrawPoint); err != nil {
		return err
	}
	r.screen.Set(x, y, core.StarRune, r.color)
	r.points = append(r.points, core.Point{X: x, Y: y})
	r.drawn++
	return nil
}

// Present implements gfx.Renderer.
func (r *Renderer) Present() error {
	if err := r.window.backend.fail(OpPresent); err != nil {
		return err
	}
	r.presented++
	return nil
}

// Destroy implements gfx.Renderer.
func (r *Renderer) Destroy() error {
	r.destroyed = true
	r.destroyedBeforeWindow = !r.window.destroyed
	return nil
}

// Screen returns the rasterized frame.
func (r *Renderer) Screen() *core.Screen { return r.screen }

// Points returns the points drawn since the last Clear.
func (r *Renderer) Points() []core.Point { return r.points }

// Presented returns the number of presented frames.
func (r *Renderer) Presented() int { return r.presented }

// Drawn returns the total number of points drawn.
func (r *Renderer) Drawn() int { return r.drawn }

// Destroyed reports whether Destroy was called, and whether that happened
// while the window was still open.
func (r *Renderer) Destroyed() (destroyed, beforeWindow bool) {
	return r.destroyed, r.destroyedBeforeWindow
}
