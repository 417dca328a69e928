package spx

import (
	"image"

	"github.com/chewxy/math32"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Float converts p to floating coordinates.
func (p Point) Float() Point2F {
	return Point2F{X: float32(p.X), Y: float32(p.Y)}
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// Point2F is a floating point 2D coordinate or displacement.
// It is the unit of the anti-aliased and curve routines.
type Point2F struct {
	X, Y float32
}

// Pf is a convenience function to create a Point2F.
func Pf(x, y float32) Point2F {
	return Point2F{X: x, Y: y}
}

// Point truncates p toward zero into integer coordinates.
func (p Point2F) Point() Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}

// Add returns the sum of two vectors.
func (p Point2F) Add(q Point2F) Point2F {
	return Point2F{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two vectors.
func (p Point2F) Sub(q Point2F) Point2F {
	return Point2F{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector scaled by a scalar.
func (p Point2F) Mul(s float32) Point2F {
	return Point2F{X: p.X * s, Y: p.Y * s}
}

// Div returns the vector divided by a scalar.
// Division by zero yields the zero vector.
func (p Point2F) Div(s float32) Point2F {
	if s == 0 {
		return Point2F{}
	}
	return p.Mul(1 / s)
}

// Dot returns the dot product of two vectors.
func (p Point2F) Dot(q Point2F) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (p Point2F) Cross(q Point2F) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point2F) Length() float32 {
	return math32.Sqrt(p.LengthSq())
}

// LengthSq returns the squared length of the vector.
func (p Point2F) LengthSq() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (p Point2F) Normalize() Point2F {
	return p.Div(p.Length())
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (p Point2F) Perp() Point2F {
	return Point2F{X: -p.Y, Y: p.X}
}

// Angle returns the angle of the vector in radians.
func (p Point2F) Angle() float32 {
	return math32.Atan2(p.Y, p.X)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point2F) Lerp(q Point2F, t float32) Point2F {
	return Point2F{X: Lerp(p.X, q.X, t), Y: Lerp(p.Y, q.Y, t)}
}

// Approx returns true if two points are equal within epsilon.
func (p Point2F) Approx(q Point2F, epsilon float32) bool {
	return math32.Abs(p.X-q.X) < epsilon && math32.Abs(p.Y-q.Y) < epsilon
}

// Vertex2D is a triangle corner carrying a texture coordinate.
// UV components wrap, so any real value is accepted.
type Vertex2D struct {
	Pos Point2F
	UV  Point2F
}
