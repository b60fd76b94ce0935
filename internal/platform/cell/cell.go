// Package cell provides a tcell backend. tcell's event model is a blocking
// poll, so a reader goroutine feeds a buffered channel that PollEvent drains
// without blocking.
package cell

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/platform/bitmap"
	"github.com/vovakirdan/starfield/internal/registry"
)

const eventQueueSize = 100

// Backend is the tcell gfx.Backend. The terminal is only taken over when
// the window is created, so output written while the subsystem is merely
// initialized stays on the normal screen.
type Backend struct {
	newScreen func() (tcell.Screen, error)
	inited    bool
	events    chan tcell.Event
	window    *Window
}

func init() {
	registry.Register("cell", "Terminal renderer (tcell)", func() gfx.Backend {
		return New()
	})
}

// New creates a backend on the real terminal.
func New() *Backend {
	return &Backend{newScreen: tcell.NewScreen}
}

// NewWithScreen creates a backend on the given screen, typically a
// tcell simulation screen. CreateWindow still calls the screen's Init.
func NewWithScreen(s tcell.Screen) *Backend {
	return &Backend{newScreen: func() (tcell.Screen, error) { return s, nil }}
}

// Name implements gfx.Backend.
func (b *Backend) Name() string {
	return "cell"
}

// Init implements gfx.Backend.
func (b *Backend) Init(gfx.Flags) error {
	b.inited = true
	return nil
}

// pump forwards screen events until the screen is finalized.
func pump(s tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		default:
		}
	}
}

// Quit implements gfx.Backend. A window still open is destroyed first.
func (b *Backend) Quit() {
	if b.window != nil {
		_ = b.window.Destroy()
	}
	b.inited = false
}

// CreateWindow implements gfx.Backend. The window covers the whole terminal.
func (b *Backend) CreateWindow(title string, _, _ int) (gfx.Window, error) {
	if !b.inited {
		return nil, errors.New("subsystem not initialized")
	}
	if b.window != nil && !b.window.destroyed {
		return nil, fmt.Errorf("window %q already open", b.window.title)
	}

	s, err := b.newScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetTitle(title)
	s.Clear()

	b.events = make(chan tcell.Event, eventQueueSize)
	go pump(s, b.events)

	b.window = &Window{title: title, screen: s}
	return b.window, nil
}

// LoadBMP implements gfx.Backend.
func (b *Backend) LoadBMP(path string) (gfx.Surface, error) {
	s, err := bitmap.Load(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// PollEvent implements gfx.Backend.
func (b *Backend) PollEvent() core.Event {
	select {
	case ev := <-b.events:
		return b.translate(ev)
	default:
		return core.NoEvent
	}
}

func (b *Backend) translate(ev tcell.Event) core.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return core.QuitEvent()
		}
		return core.Event{Type: core.EventKey, Key: ev.Name()}

	case *tcell.EventResize:
		if b.window != nil && !b.window.destroyed {
			b.window.screen.Sync()
		}
		w, h := ev.Size()
		return core.Event{Type: core.EventResize, W: w, H: h}
	}
	return core.NoEvent
}

// Delay implements gfx.Backend.
func (b *Backend) Delay(d time.Duration) {
	time.Sleep(d)
}

// Window is the terminal screen.
type Window struct {
	title     string
	screen    tcell.Screen
	destroyed bool
}

// Size implements gfx.Window.
func (w *Window) Size() (int, int) {
	return w.screen.Size()
}

// CreateRenderer implements gfx.Window.
func (w *Window) CreateRenderer() (gfx.Renderer, error) {
	if w.destroyed {
		return nil, errors.New("window destroyed")
	}
	return &Renderer{screen: w.screen, color: core.ColorWhite, bg: core.ColorBlack}, nil
}

// SetIcon implements gfx.Window. Terminals have no icon.
func (w *Window) SetIcon(gfx.Surface) error {
	return nil
}

// Destroy implements gfx.Window. It restores the terminal.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	w.screen.Fini()
	return nil
}

// Renderer draws points as glyphs on the tcell screen.
type Renderer struct {
	screen tcell.Screen
	color  core.Color
	bg     core.Color
}

func tcellColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// SetDrawColor implements gfx.Renderer.
func (r *Renderer) SetDrawColor(c core.Color) error {
	r.color = c
	return nil
}

// Clear implements gfx.Renderer.
func (r *Renderer) Clear() error {
	r.bg = r.color
	r.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(r.bg)))
	return nil
}

// DrawPoint implements gfx.Renderer. tcell clips out-of-range cells.
func (r *Renderer) DrawPoint(x, y int) error {
	style := tcell.StyleDefault.
		Foreground(tcellColor(r.color)).
		Background(tcellColor(r.bg))
	r.screen.SetContent(x, y, core.StarRune, nil, style)
	return nil
}

// Present implements gfx.Renderer.
func (r *Renderer) Present() error {
	r.screen.Show()
	return nil
}

// Destroy implements gfx.Renderer.
func (r *Renderer) Destroy() error {
	return nil
}

var (
	_ gfx.Backend  = (*Backend)(nil)
	_ gfx.Window   = (*Window)(nil)
	_ gfx.Renderer = (*Renderer)(nil)
)
