// Package gfx manages the lifetime of a windowing/rendering subsystem and
// defines the interfaces every platform backend implements.
package gfx

import (
	"time"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/pixel"
)

// Flags selects which subsystem capabilities to initialize.
type Flags uint32

const (
	FlagTimer Flags = 1 << iota
	FlagAudio
	FlagVideo
	FlagEvents

	FlagEverything = FlagTimer | FlagAudio | FlagVideo | FlagEvents
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Backend is a windowing/rendering subsystem.
// Implementations are not safe for concurrent use; the render loop owns them.
type Backend interface {
	// Name returns the registry name of the backend (e.g. "sdl", "tui").
	Name() string

	// Init brings the subsystem up. The returned error carries the
	// backend's native diagnostic text.
	Init(flags Flags) error

	// Quit releases the subsystem. Called exactly once after a successful Init.
	Quit()

	// CreateWindow opens a window of the requested size.
	// Terminal backends may ignore the size and use the terminal's.
	CreateWindow(title string, width, height int) (Window, error)

	// LoadBMP loads a bitmap file into a surface.
	LoadBMP(path string) (Surface, error)

	// PollEvent returns the next pending event without blocking,
	// or core.NoEvent if the queue is empty.
	PollEvent() core.Event

	// Delay blocks the calling goroutine for d.
	Delay(d time.Duration)
}

// Window is an open window.
type Window interface {
	// Size returns the drawable size.
	Size() (width, height int)

	// CreateRenderer creates the renderer that draws into this window.
	CreateRenderer() (Renderer, error)

	// SetIcon assigns the window icon.
	SetIcon(icon Surface) error

	// Destroy closes the window.
	Destroy() error
}

// Renderer issues draw calls to a window.
type Renderer interface {
	SetDrawColor(c core.Color) error
	Clear() error
	DrawPoint(x, y int) error
	Present() error
	Destroy() error
}

// Surface is a pixel image in backend memory.
type Surface interface {
	// Lock grants exclusive access to the pixel memory until Unlock.
	Lock() (*pixel.Buffer, error)
	Unlock()

	// SetColorKey marks the raw pixel value key as transparent.
	SetColorKey(key uint32) error

	// Free releases the surface.
	Free()
}
