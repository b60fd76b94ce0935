package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
)

// Window is a terminal screen driven by a Bubble Tea program.
type Window struct {
	program   *tea.Program
	screen    *core.Screen
	done      chan error
	destroyed bool
}

// Size implements gfx.Window.
func (w *Window) Size() (int, int) {
	return w.screen.Width(), w.screen.Height()
}

// CreateRenderer implements gfx.Window.
func (w *Window) CreateRenderer() (gfx.Renderer, error) {
	if w.destroyed {
		return nil, errors.New("window destroyed")
	}
	return &Renderer{window: w, color: core.ColorWhite}, nil
}

// SetIcon implements gfx.Window. Terminals have no window icon; the surface
// is accepted and ignored.
func (w *Window) SetIcon(gfx.Surface) error {
	return nil
}

// Destroy stops the Bubble Tea program and restores the terminal.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	w.program.Quit()
	return <-w.done
}

// Renderer rasterizes points into the window's screen buffer.
type Renderer struct {
	window *Window
	color  core.Color
}

// SetDrawColor implements gfx.Renderer.
func (r *Renderer) SetDrawColor(c core.Color) error {
	r.color = c
	return nil
}

// Clear implements gfx.Renderer.
func (r *Renderer) Clear() error {
	r.window.screen.Clear(r.color)
	return nil
}

// DrawPoint implements gfx.Renderer. Points outside the screen are clipped.
func (r *Renderer) DrawPoint(x, y int) error {
	r.window.screen.Set(x, y, core.StarRune, r.color)
	return nil
}

// Present implements gfx.Renderer.
func (r *Renderer) Present() error {
	if r.window.destroyed {
		return errors.New("window destroyed")
	}
	r.window.program.Send(FrameMsg(RenderScreen(r.window.screen)))
	return nil
}

// Destroy implements gfx.Renderer.
func (r *Renderer) Destroy() error {
	return nil
}
