package gfx

import (
	"errors"

	"github.com/vovakirdan/starfield/internal/pixel"
)

// Context is an initialized subsystem. Close releases it.
type Context struct {
	backend Backend
	closed  bool
}

// Init initializes b with flags. On failure the subsystem is not released,
// since it never came up.
func Init(b Backend, flags Flags) (*Context, error) {
	if err := b.Init(flags); err != nil {
		return nil, initError("init", err)
	}
	return &Context{backend: b}, nil
}

// Run initializes b, calls fn, and releases the subsystem on every exit
// path out of fn, including error returns and panics.
func Run(b Backend, flags Flags, fn func(*Context) error) error {
	ctx, err := Init(b, flags)
	if err != nil {
		return err
	}
	defer ctx.Close()

	return fn(ctx)
}

// Close releases the subsystem. Subsequent calls do nothing.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.backend.Quit()
}

// CreateWindow opens a window.
func (c *Context) CreateWindow(title string, width, height int) (Window, error) {
	w, err := c.backend.CreateWindow(title, width, height)
	if err != nil {
		return nil, initError("window", err)
	}
	return w, nil
}

// CreateRenderer creates a renderer for w.
func (c *Context) CreateRenderer(w Window) (Renderer, error) {
	r, err := w.CreateRenderer()
	if err != nil {
		return nil, initError("renderer", err)
	}
	return r, nil
}

// LoadIcon loads the bitmap at path, makes its top-left pixel color
// transparent, and assigns it as the window icon.
func (c *Context) LoadIcon(w Window, path string) error {
	icon, err := c.backend.LoadBMP(path)
	if err != nil {
		return initError("icon", err)
	}
	defer icon.Free()

	key, err := cornerPixel(icon)
	if err != nil {
		return initError("icon", err)
	}

	if err := icon.SetColorKey(key); err != nil {
		return initError("icon", err)
	}

	if err := w.SetIcon(icon); err != nil {
		return initError("icon", err)
	}
	return nil
}

// cornerPixel reads pixel (0, 0) while the surface is locked.
func cornerPixel(s Surface) (uint32, error) {
	buf, err := s.Lock()
	if err != nil {
		return 0, err
	}
	defer s.Unlock()

	if len(buf.Pix) < buf.BytesPerPixel || buf.BytesPerPixel == 0 {
		return 0, errors.New("empty surface")
	}
	return pixel.Get(buf, 0, 0), nil
}
