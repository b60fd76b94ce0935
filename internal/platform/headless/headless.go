// Package headless provides an in-memory backend. Draw calls rasterize into a
// core.Screen so runs can be inspected without a display; it backs tests and
// the --backend headless mode.
package headless

import (
	"errors"
	"time"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/platform/bitmap"
	"github.com/vovakirdan/starfield/internal/registry"
)

// Operations that can be made to fail with FailOn.
const (
	OpInit       = "init"
	OpWindow     = "window"
	OpRenderer   = "renderer"
	OpLoadBMP    = "bmp"
	OpSetIcon    = "icon"
	OpDrawColor  = "draw_color"
	OpClear      = "clear"
	OpDrawPoint  = "point"
	OpPresent    = "present"
	OpWindowFree = "window_destroy"
)

// Backend is an in-memory gfx.Backend.
type Backend struct {
	// Sleep makes Delay actually block; tests leave it off.
	Sleep bool

	flags    gfx.Flags
	inited   bool
	quits    int
	events   []core.Event
	polls    int
	delays   int
	slept    time.Duration
	failures map[string]error
	window   *Window
	icon     *bitmap.Surface
	// Window still open when Quit ran
	windowOpenAtQuit bool
}

func init() {
	registry.Register("headless", "In-memory renderer, no display", func() gfx.Backend {
		return &Backend{Sleep: true}
	})
}

// New creates a headless backend.
func New() *Backend {
	return &Backend{failures: make(map[string]error)}
}

// FailOn makes op return an error with the given diagnostic text.
func (b *Backend) FailOn(op, msg string) {
	if b.failures == nil {
		b.failures = make(map[string]error)
	}
	b.failures[op] = errors.New(msg)
}

func (b *Backend) fail(op string) error {
	return b.failures[op]
}

// Push queues events for PollEvent, delivered one per call.
func (b *Backend) Push(events ...core.Event) {
	b.events = append(b.events, events...)
}

// Name implements gfx.Backend.
func (b *Backend) Name() string {
	return "headless"
}

// Init implements gfx.Backend.
func (b *Backend) Init(flags gfx.Flags) error {
	if err := b.fail(OpInit); err != nil {
		return err
	}
	b.flags = flags
	b.inited = true
	return nil
}

// Quit implements gfx.Backend.
func (b *Backend) Quit() {
	b.quits++
	b.windowOpenAtQuit = b.window != nil && !b.window.destroyed
	b.inited = false
}

// CreateWindow implements gfx.Backend.
func (b *Backend) CreateWindow(title string, width, height int) (gfx.Window, error) {
	if !b.inited {
		return nil, errors.New("subsystem not initialized")
	}
	if err := b.fail(OpWindow); err != nil {
		return nil, err
	}
	b.window = &Window{backend: b, title: title, width: width, height: height}
	return b.window, nil
}

// LoadBMP implements gfx.Backend.
func (b *Backend) LoadBMP(path string) (gfx.Surface, error) {
	if err := b.fail(OpLoadBMP); err != nil {
		return nil, err
	}
	s, err := bitmap.Load(path)
	if err != nil {
		return nil, err
	}
	b.icon = s
	return s, nil
}

// PollEvent implements gfx.Backend.
func (b *Backend) PollEvent() core.Event {
	b.polls++
	if len(b.events) == 0 {
		return core.NoEvent
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

// Delay implements gfx.Backend.
func (b *Backend) Delay(d time.Duration) {
	b.delays++
	b.slept += d
	if b.Sleep {
		time.Sleep(d)
	}
}

// Flags returns the flags passed to Init.
func (b *Backend) Flags() gfx.Flags { return b.flags }

// QuitCalls returns how many times Quit was called.
func (b *Backend) QuitCalls() int { return b.quits }

// WindowOpenAtQuit reports whether the last window was still open when the
// subsystem was released.
func (b *Backend) WindowOpenAtQuit() bool { return b.windowOpenAtQuit }

// Polls returns how many times PollEvent was called.
func (b *Backend) Polls() int { return b.polls }

// Delays returns the number of Delay calls and their total duration.
func (b *Backend) Delays() (int, time.Duration) { return b.delays, b.slept }

// Window returns the last created window, or nil.
func (b *Backend) Window() *Window { return b.window }

// Icon returns the last loaded bitmap, or nil.
func (b *Backend) Icon() *bitmap.Surface { return b.icon }

var _ gfx.Backend = (*Backend)(nil)
