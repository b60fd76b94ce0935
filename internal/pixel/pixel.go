// Package pixel reads and writes raw pixel values in a locked surface buffer.
//
// The accessors perform no locking. Callers must hold exclusive access to the
// buffer (for native surfaces: lock it) for the duration of each call.
package pixel

import "encoding/binary"

// Buffer describes the raw memory of a surface.
type Buffer struct {
	Pix           []byte           // Pixel memory, row-major
	Pitch         int              // Bytes per row, including padding
	BytesPerPixel int              // 1, 2, 3 or 4
	Order         binary.ByteOrder // Byte order of multi-byte pixels; nil means host order
}

// NewBuffer allocates a tightly packed buffer in host byte order.
func NewBuffer(width, height, bytesPerPixel int) *Buffer {
	return &Buffer{
		Pix:           make([]byte, width*height*bytesPerPixel),
		Pitch:         width * bytesPerPixel,
		BytesPerPixel: bytesPerPixel,
	}
}

// Width returns the number of whole pixels in one row.
func (b *Buffer) Width() int {
	if b.BytesPerPixel <= 0 {
		return 0
	}
	return b.Pitch / b.BytesPerPixel
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	if b.Pitch <= 0 {
		return 0
	}
	return len(b.Pix) / b.Pitch
}

func (b *Buffer) order() binary.ByteOrder {
	if b.Order == nil {
		return binary.NativeEndian
	}
	return b.Order
}

// offset returns the index of the first byte of pixel (x, y).
func (b *Buffer) offset(x, y int) int {
	return y*b.Pitch + x*b.BytesPerPixel
}

// bigEndian reports whether order stores the most significant byte first.
func bigEndian(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 1)
	return probe[0] == 0
}

// Get returns the raw value of pixel (x, y).
// Returns 0 for byte widths outside {1, 2, 3, 4}.
func Get(b *Buffer, x, y int) uint32 {
	p := b.Pix[b.offset(x, y):]

	switch b.BytesPerPixel {
	case 1:
		return uint32(p[0])
	case 2:
		return uint32(b.order().Uint16(p))
	case 3:
		if bigEndian(b.order()) {
			return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
		return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
	case 4:
		return b.order().Uint32(p)
	default:
		return 0
	}
}

// Set writes the raw value v to pixel (x, y), truncated to the pixel width.
// Does nothing for byte widths outside {1, 2, 3, 4}.
func Set(b *Buffer, x, y int, v uint32) {
	p := b.Pix[b.offset(x, y):]

	switch b.BytesPerPixel {
	case 1:
		p[0] = byte(v)
	case 2:
		b.order().PutUint16(p, uint16(v))
	case 3:
		if bigEndian(b.order()) {
			p[0] = byte(v >> 16)
			p[1] = byte(v >> 8)
			p[2] = byte(v)
		} else {
			p[0] = byte(v)
			p[1] = byte(v >> 8)
			p[2] = byte(v >> 16)
		}
	case 4:
		b.order().PutUint32(p, v)
	}
}
