// Package tui provides the Bubble Tea backend. The Bubble Tea program runs in
// its own goroutine; it forwards key and resize messages into an event queue
// that PollEvent drains, and displays frames handed over by Present.
package tui

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/platform/bitmap"
	"github.com/vovakirdan/starfield/internal/registry"
)

// eventQueueSize bounds the number of undelivered events.
const eventQueueSize = 64

// Backend is the Bubble Tea gfx.Backend.
type Backend struct {
	keys   KeyMap
	events chan core.Event
	window *Window
	opts   []tea.ProgramOption
}

func init() {
	registry.Register("tui", "Terminal renderer (Bubble Tea)", func() gfx.Backend {
		return New()
	})
}

// New creates a Bubble Tea backend drawing to the terminal's alternate screen.
func New(opts ...tea.ProgramOption) *Backend {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Backend{
		keys: DefaultKeyMap(),
		opts: opts,
	}
}

// Name implements gfx.Backend.
func (b *Backend) Name() string {
	return "tui"
}

// Init implements gfx.Backend.
func (b *Backend) Init(flags gfx.Flags) error {
	if flags.Has(gfx.FlagVideo) && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}
	b.events = make(chan core.Event, eventQueueSize)
	return nil
}

// Quit implements gfx.Backend.
func (b *Backend) Quit() {
	if b.window != nil && !b.window.destroyed {
		_ = b.window.Destroy()
	}
	b.events = nil
}

// CreateWindow implements gfx.Backend. The window takes the terminal's size;
// width and height are used only when the size cannot be read.
func (b *Backend) CreateWindow(title string, width, height int) (gfx.Window, error) {
	if b.events == nil {
		return nil, errors.New("subsystem not initialized")
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	m := newModel(title, b.keys, b.events)
	w := &Window{
		program: tea.NewProgram(m, b.opts...),
		screen:  core.NewScreen(width, height),
		done:    make(chan error, 1),
	}
	go func() {
		_, err := w.program.Run()
		w.done <- err
	}()

	b.window = w
	return w, nil
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
		if ev.Type == core.EventResize && b.window != nil {
			b.window.screen.Resize(ev.W, ev.H)
		}
		return ev
	default:
		return core.NoEvent
	}
}

// Delay implements gfx.Backend.
func (b *Backend) Delay(d time.Duration) {
	time.Sleep(d)
}

var _ gfx.Backend = (*Backend)(nil)
