// Package starfield simulates stars flying toward the viewer and projects
// them onto a 2D viewport.
package starfield

import (
	"github.com/vovakirdan/starfield/internal/core"
)

// Star is a point light moving toward the viewer along the depth axis.
type Star struct {
	X, Y  int // Lateral offset in world units
	Depth int // Distance from camera; always in (0, Scale] between frames
	Speed int // Depth decrement per frame
}

// Camera is the fixed screen offset that moves the projection origin to the
// middle of the viewport.
type Camera struct {
	X, Y int
}

// NewCamera returns the camera centered on a width x height viewport.
func NewCamera(width, height int) Camera {
	c := core.NewRect(0, 0, width, height).Center()
	return Camera{X: c.X, Y: c.Y}
}

// Offset returns the camera as a point.
func (c Camera) Offset() core.Point {
	return core.Point{X: c.X, Y: c.Y}
}

// Project maps a lateral offset at the given depth to screen space, before
// the camera offset is applied. Integer division truncates toward zero.
// depth must be positive.
func Project(x, y, depth, scale int) core.Point {
	return core.Point{
		X: (x * scale) / depth,
		Y: (y * scale) / depth,
	}
}
