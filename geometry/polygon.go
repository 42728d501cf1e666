package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Location classifies a point against a polygon.
type Location int

const (
	Outside Location = iota
	OnBoundary
	Inside
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case OnBoundary:
		return "boundary"
	case Inside:
		return "inside"
	}
	return "unknown"
}

// Polygon is an implicitly closed ring of vertices. Orientation is
// significant: it decides which vertices are reflex.
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// NewPolygon builds a polygon from pts, dropping consecutive duplicates and
// a repeated closing vertex.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}.Normalize()
}

// Normalize returns a copy without consecutive duplicate vertices and
// without a closing vertex equal to the first one.
func (p Polygon) Normalize() Polygon {
	out := make([]Point, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		if len(out) > 0 && out[len(out)-1].Equal(v) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[len(out)-1].Equal(out[0]) {
		out = out[:len(out)-1]
	}
	return Polygon{Vertices: out}
}

// Edge returns the edge leaving vertex i.
func (p Polygon) Edge(i int) LineSegment {
	n := len(p.Vertices)
	return LineSegment{P1: p.Vertices[i], P2: p.Vertices[(i+1)%n]}
}

// Edges returns all edges in vertex order.
func (p Polygon) Edges() []LineSegment {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([]LineSegment, n)
	for i := range p.Vertices {
		edges[i] = p.Edge(i)
	}
	return edges
}

// Ring converts p to a closed orb.Ring.
func (p Polygon) Ring() orb.Ring {
	r := make(orb.Ring, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		r = append(r, v.Orb())
	}
	if len(p.Vertices) > 0 {
		r = append(r, p.Vertices[0].Orb())
	}
	return r
}

// PolygonFromRing converts an orb.Ring, closed or not.
func PolygonFromRing(r orb.Ring) Polygon {
	pts := make([]Point, len(r))
	for i, v := range r {
		pts[i] = FromOrb(v)
	}
	return NewPolygon(pts...)
}

// Bound returns the bounding box of the polygon.
func (p Polygon) Bound() orb.Bound {
	return p.Ring().Bound()
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 {
	if len(p.Vertices) < 3 {
		return 0
	}
	return math.Abs(planar.Area(p.Ring()))
}

// Orientation returns orb.CCW or orb.CW, or 0 for a degenerate ring.
func (p Polygon) Orientation() orb.Orientation {
	if len(p.Vertices) < 3 {
		return 0
	}
	return p.Ring().Orientation()
}

// IsReflex reports whether the interior angle at vertex i exceeds 180
// degrees. Collinear vertices are not reflex.
func (p Polygon) IsReflex(i int) bool {
	n := len(p.Vertices)
	if n < 4 {
		return false
	}
	prev := p.Vertices[(i+n-1)%n]
	next := p.Vertices[(i+1)%n]
	turn := orientation(prev, p.Vertices[i], next)
	switch p.Orientation() {
	case orb.CCW:
		return turn < 0
	case orb.CW:
		return turn > 0
	}
	return false
}

// ReflexVertices returns the indices of the reflex vertices in order.
func (p Polygon) ReflexVertices() []int {
	var idx []int
	for i := range p.Vertices {
		if p.IsReflex(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Locate classifies p against polygon using ray casting. Points within
// Epsilon of an edge are OnBoundary.
func Locate(point Point, polygon Polygon) Location {
	n := len(polygon.Vertices)
	if n < 3 {
		return Outside
	}

	count := 0
	for i := 0; i < n; i++ {
		v1 := polygon.Vertices[i]
		v2 := polygon.Vertices[(i+1)%n]

		if onSegment(v1, v2, point) {
			return OnBoundary
		}

		// Check if the ray from point to the left crosses the edge
		if (v1.Y > point.Y) != (v2.Y > point.Y) {
			slope := (point.X-v1.X)*(v2.Y-v1.Y) - (v2.X-v1.X)*(point.Y-v1.Y)
			if v2.Y > v1.Y {
				if slope > 0 {
					count++
				}
			} else {
				if slope < 0 {
					count++
				}
			}
		}
	}

	if count%2 == 1 {
		return Inside
	}
	return Outside
}

// PointInPolygon reports whether point is inside polygon or on its boundary.
func PointInPolygon(point Point, polygon Polygon) bool {
	return Locate(point, polygon) != Outside
}
