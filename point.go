package geo3

import (
	"fmt"
	"math"

	"github.com/hupe1980/geo3/internal/scalar"
)

// Point is a position or displacement in 3D space. It is a plain value
// type: methods never mutate the receiver, and independent values are safe
// for unrestricted concurrent use.
//
// All float64 values are accepted, including NaN and the infinities;
// arithmetic propagates them per IEEE 754.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Vector is an alias for Point. The two names are interchangeable; use
// whichever reads better for the quantity at hand (absolute position vs
// displacement).
type Vector = Point

// NewPoint creates a Point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Dot returns the dot product p · q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the right-handed cross product p × q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Magnitude returns the Euclidean length of p.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns the unit vector in the direction of p, using Epsilon
// as the degeneracy guard.
func (p Point) Normalize() Point {
	return p.NormalizeWithin(Epsilon)
}

// NormalizeWithin returns the unit vector in the direction of p. If the
// magnitude is not strictly greater than eps the zero Point is returned
// instead; the division is never performed against a degenerate length.
func (p Point) NormalizeWithin(eps float64) Point {
	mag := p.Magnitude()
	if mag > eps {
		return p.Scale(1 / mag)
	}
	return Point{}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsZero reports whether p is exactly the zero Point.
func (p Point) IsZero() bool {
	return p == Point{}
}

// Equal reports whether p and q agree componentwise within Epsilon.
func (p Point) Equal(q Point) bool {
	return p.EqualWithin(q, Epsilon)
}

// EqualWithin reports whether p and q agree componentwise within a
// relative tolerance of eps. The tolerance scales with the larger
// magnitude per component, so it tightens toward zero: a coordinate only
// equals zero exactly. NaN coordinates compare unequal to everything,
// including themselves.
func (p Point) EqualWithin(q Point, eps float64) bool {
	return scalar.NearlyEqual(p.X, q.X, eps) &&
		scalar.NearlyEqual(p.Y, q.Y, eps) &&
		scalar.NearlyEqual(p.Z, q.Z, eps)
}

// String returns the textual form "Point[x, y, z]" with %g coordinates.
// Note that ParsePoint does not read this form back; it decodes bare
// whitespace-separated scalars.
func (p Point) String() string {
	return fmt.Sprintf("Point[%g, %g, %g]", p.X, p.Y, p.Z)
}
