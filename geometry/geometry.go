// Package geometry holds the 2D primitives and predicates used to decide
// what an actor can walk across: points, segments, polygons, walk areas and
// the visibility test between two points.
//
// Every predicate in this package compares against the same absolute
// tolerance, Epsilon. Mesh building, endpoint insertion, snapping and path
// smoothing all go through these functions, so a pair of points is judged
// visible or blocked the same way no matter who asks.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Epsilon is the tolerance for orientation signs, point equality and
// on-boundary classification.
const Epsilon = 1e-9

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports whether both coordinates differ by at most Epsilon.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) <= Epsilon && math.Abs(p.Y-other.Y) <= Epsilon
}

// Orb converts p to an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrb converts an orb.Point.
func FromOrb(p orb.Point) Point {
	return Point{X: p[0], Y: p[1]}
}

// lerp returns the point at parameter t along a->b.
func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// Midpoint returns the point halfway along the segment.
func (s LineSegment) Midpoint() Point {
	return lerp(s.P1, s.P2, 0.5)
}

// Length returns the segment length.
func (s LineSegment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// ClosestPoint returns the point of the segment nearest to p.
func (s LineSegment) ClosestPoint(p Point) Point {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return s.P1
	}
	t := ((p.X-s.P1.X)*dx + (p.Y-s.P1.Y)*dy) / lenSq
	switch {
	case t <= 0:
		return s.P1
	case t >= 1:
		return s.P2
	}
	return lerp(s.P1, s.P2, t)
}

// bound returns the segment's bounding box.
func (s LineSegment) bound() orb.Bound {
	return orb.Bound{Min: s.P1.Orb(), Max: s.P1.Orb()}.Extend(s.P2.Orb())
}

// cross is the z component of (b-a) x (c-a). Positive when a, b, c turn
// counter-clockwise.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// orientation is the sign of cross with Epsilon snapping to zero.
func orientation(a, b, c Point) int {
	v := cross(a, b, c)
	switch {
	case v > Epsilon:
		return 1
	case v < -Epsilon:
		return -1
	}
	return 0
}

// onSegment reports whether q lies on segment pr.
func onSegment(p, r, q Point) bool {
	if orientation(p, r, q) != 0 {
		return false
	}
	return q.X <= math.Max(p.X, r.X)+Epsilon && q.X >= math.Min(p.X, r.X)-Epsilon &&
		q.Y <= math.Max(p.Y, r.Y)+Epsilon && q.Y >= math.Min(p.Y, r.Y)-Epsilon
}

// SegmentsIntersect reports whether ab and cd cross at a single point that
// is interior to both. Touching at an endpoint, a T-junction and collinear
// overlap do not count: mesh edges legitimately share endpoints and run
// along polygon edges.
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := orientation(c, d, a)
	d2 := orientation(c, d, b)
	d3 := orientation(a, b, c)
	d4 := orientation(a, b, d)
	return d1*d2 < 0 && d3*d4 < 0
}

// segmentsTouch reports any contact between ab and cd, including shared
// endpoints and collinear overlap.
func segmentsTouch(a, b, c, d Point) bool {
	if SegmentsIntersect(a, b, c, d) {
		return true
	}
	return onSegment(c, d, a) || onSegment(c, d, b) || onSegment(a, b, c) || onSegment(a, b, d)
}

// segmentParam returns t such that v = a + t*(b-a), for v on the line ab.
func segmentParam(a, b, v Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return ((v.X-a.X)*dx + (v.Y-a.Y)*dy) / lenSq
}
