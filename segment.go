package geo3

import (
	"fmt"
	"math"

	"github.com/hupe1980/geo3/internal/scalar"
)

// Segment is a straight line segment between two points. Like Point it is
// a plain value type: methods never mutate the receiver, and independent
// values are safe for unrestricted concurrent use. The zero value is the
// degenerate segment at the origin.
type Segment struct {
	Start Point
	End   Point
}

// NewSegment creates a Segment from its two endpoints.
func NewSegment(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Direction returns the displacement End - Start. It is not normalized.
func (s Segment) Direction() Vector {
	return s.End.Sub(s.Start)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() Point {
	return s.Start.Add(s.End).Scale(0.5)
}

// Reverse returns the segment with its endpoints swapped. The point set is
// unchanged; only the direction flips.
func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// IsDegenerate reports whether the segment is too short to carry a
// direction, using Epsilon as the guard.
func (s Segment) IsDegenerate() bool {
	return s.IsDegenerateWithin(Epsilon)
}

// IsDegenerateWithin reports whether the squared length is at most eps.
// This is the same test the closest-distance core uses before dividing by
// a squared length.
func (s Segment) IsDegenerateWithin(eps float64) bool {
	d := s.Direction()
	return d.Dot(d) <= eps
}

// ClosestPointTo returns the point on the segment nearest to p, using
// Epsilon as the degeneracy guard.
func (s Segment) ClosestPointTo(p Point) Point {
	return s.ClosestPointToWithin(p, Epsilon)
}

// ClosestPointToWithin returns the point on the segment nearest to p: the
// projection of p onto the segment's line, clamped to the segment. A
// degenerate segment answers with its start point.
func (s Segment) ClosestPointToWithin(p Point, eps float64) Point {
	d := s.Direction()
	dd := d.Dot(d)
	if dd <= eps {
		return s.Start
	}
	t := scalar.Clamp01(p.Sub(s.Start).Dot(d) / dd)
	return s.Start.Add(d.Scale(t))
}

// DistanceTo returns the Euclidean distance from p to the segment.
func (s Segment) DistanceTo(p Point) float64 {
	return s.DistanceToWithin(p, Epsilon)
}

// DistanceToWithin returns the Euclidean distance from p to the segment,
// with an explicit degeneracy guard.
func (s Segment) DistanceToWithin(p Point, eps float64) float64 {
	return p.Distance(s.ClosestPointToWithin(p, eps))
}

// String returns "Segment[<start> -> <end>]" using the Point text form.
func (s Segment) String() string {
	return fmt.Sprintf("Segment[%v -> %v]", s.Start, s.End)
}

// ClosestDistance returns the minimum Euclidean distance between any point
// on a and any point on b, using Epsilon for the internal guards.
func ClosestDistance(a, b Segment) float64 {
	return ClosestDistanceWithin(a, b, Epsilon)
}

// ClosestDistanceWithin is ClosestDistance with an explicit tolerance for
// the parallelism and degeneracy guards.
//
// The result is symmetric under swapping a and b and under reversing
// either segment's direction, up to floating-point rounding. Degenerate
// segments are handled as points, so the distance between two zero-length
// segments is the distance between their start points. For finite inputs
// the result is finite and non-negative.
func ClosestDistanceWithin(a, b Segment, eps float64) float64 {
	p, q := ClosestPointsWithin(a, b, eps)
	return p.Distance(q)
}

// ClosestPoints returns a pair of points, the first on a and the second on
// b, that realize the closest distance between the two segments.
func ClosestPoints(a, b Segment) (Point, Point) {
	return ClosestPointsWithin(a, b, Epsilon)
}

// ClosestPointsWithin is ClosestPoints with an explicit tolerance. When
// the minimum is attained on a continuum (parallel overlapping segments),
// the pair anchored nearest to a.Start is chosen.
func ClosestPointsWithin(a, b Segment, eps float64) (Point, Point) {
	s, t := closestParams(a, b, eps)
	return a.Start.Add(a.Direction().Scale(s)), b.Start.Add(b.Direction().Scale(t))
}

// closestParams computes the clamped parametric solution of the
// closest-approach problem between sa and sb: parameters s and t in [0,1]
// such that sa.Start + s*d1 and sb.Start + t*d2 are mutually nearest.
//
// The scalar names follow the classical derivation: with d1, d2 the
// direction vectors and r the offset between start points,
//
//	a = d1·d1   e = d2·d2   f = d2·r   b = d1·d2   c = d1·r
//
// and the unconstrained optimum solves (a·e - b²)·s = b·f - c·e,
// (a·e - b²)·t = a·f - b·c. Out-of-range parameters are clamped and the
// remaining free parameter is re-minimized, which keeps the result the
// true constrained minimum.
func closestParams(sa, sb Segment, eps float64) (float64, float64) {
	d1 := sa.Direction()
	d2 := sb.Direction()
	r := sa.Start.Sub(sb.Start)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	// Degenerate directions collapse to point projections. Divisions below
	// never see a squared length under eps.
	if a <= eps && e <= eps {
		return 0, 0
	}
	if a <= eps {
		return 0, scalar.Clamp01(f / e)
	}
	c := d1.Dot(r)
	if e <= eps {
		return scalar.Clamp01(-c / a), 0
	}

	b := d1.Dot(d2)
	den := a*e - b*b

	// Parallel directions leave s unconstrained along the common line;
	// anchor at sa.Start and let the re-minimization below settle t and s.
	var s float64
	if math.Abs(den) > eps {
		s = scalar.Clamp01((b*f - c*e) / den)
	}

	t := (b*s + f) / e

	if t < 0 {
		t = 0
		s = scalar.Clamp01(-c / a)
	} else if t > 1 {
		t = 1
		s = scalar.Clamp01((b - c) / a)
	}

	return s, t
}
