// Package vec provides small 3D vector arithmetic used for startup diagnostics.
package vec

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a shorthand constructor.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the component-wise difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale multiplies every component by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the scalar product.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns the unit vector, or the zero vector for zero length.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// String formats the vector as (x, y, z).
func (a Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}

// Diagnostics returns the vector arithmetic lines printed before the
// starfield starts.
func Diagnostics() []string {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	n := a.Normalize()
	return []string{
		fmt.Sprintf("a = %v, b = %v", a, b),
		fmt.Sprintf("a + b = %v", a.Add(b)),
		fmt.Sprintf("a - b = %v", a.Sub(b)),
		fmt.Sprintf("a * 2 = %v", a.Scale(2)),
		fmt.Sprintf("a . b = %g", a.Dot(b)),
		fmt.Sprintf("a x b = %v", a.Cross(b)),
		fmt.Sprintf("|a| = %.4f", a.Len()),
		fmt.Sprintf("a / |a| = (%.4f, %.4f, %.4f)", n.X, n.Y, n.Z),
	}
}
