// Package bitmap loads BMP files into in-memory surfaces for backends that
// have no native image loader.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/starfield/internal/gfx"
	"github.com/vovakirdan/starfield/internal/pixel"
)

// BytesPerPixel is the surface format: 32-bit ARGB in host byte order.
const BytesPerPixel = 4

// Surface is an in-memory gfx.Surface.
type Surface struct {
	buf      *pixel.Buffer
	locked   bool
	freed    bool
	colorKey uint32
	keyed    bool
}

// Load decodes the BMP file at path.
func Load(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", path, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts img into an ARGB surface.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	buf := pixel.NewBuffer(bounds.Dx(), bounds.Dy(), BytesPerPixel)

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixel.Set(buf, x, y, PackARGB(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)))
		}
	}
	return &Surface{buf: buf}
}

// PackARGB builds a raw ARGB8888 value.
func PackARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.buf.Width(), s.buf.Height()
}

// Lock implements gfx.Surface.
func (s *Surface) Lock() (*pixel.Buffer, error) {
	if s.freed {
		return nil, errors.New("surface already freed")
	}
	if s.locked {
		return nil, errors.New("surface already locked")
	}
	s.locked = true
	return s.buf, nil
}

// Unlock implements gfx.Surface.
func (s *Surface) Unlock() {
	s.locked = false
}

// Locked reports whether the surface is currently locked.
func (s *Surface) Locked() bool {
	return s.locked
}

// SetColorKey implements gfx.Surface.
func (s *Surface) SetColorKey(key uint32) error {
	if s.freed {
		return errors.New("surface already freed")
	}
	s.colorKey = key
	s.keyed = true
	return nil
}

// ColorKey returns the transparent pixel value, if one was set.
func (s *Surface) ColorKey() (uint32, bool) {
	return s.colorKey, s.keyed
}

// Free implements gfx.Surface.
func (s *Surface) Free() {
	s.freed = true
}

// Freed reports whether Free was called.
func (s *Surface) Freed() bool {
	return s.freed
}

var _ gfx.Surface = (*Surface)(nil)
