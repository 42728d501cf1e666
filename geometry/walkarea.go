package geometry

import (
	"sort"

	"github.com/paulmach/orb"
)

// WalkArea is the ground an actor may traverse: one outer polygon minus
// zero or more obstacle holes.
type WalkArea struct {
	Outer Polygon   `json:"outer"`
	Holes []Polygon `json:"holes,omitempty"`
}

// Normalize normalizes every polygon of the area.
func (a WalkArea) Normalize() WalkArea {
	out := WalkArea{Outer: a.Outer.Normalize()}
	if len(a.Holes) > 0 {
		out.Holes = make([]Polygon, len(a.Holes))
		for i, h := range a.Holes {
			out.Holes[i] = h.Normalize()
		}
	}
	return out
}

// Polygons returns the outer polygon followed by the holes.
func (a WalkArea) Polygons() []Polygon {
	polys := make([]Polygon, 0, len(a.Holes)+1)
	polys = append(polys, a.Outer)
	return append(polys, a.Holes...)
}

// Edges returns every boundary edge: outer edges first, then each hole in
// order. The position in this slice is the edge index used for tie-breaks.
func (a WalkArea) Edges() []LineSegment {
	var edges []LineSegment
	for _, p := range a.Polygons() {
		edges = append(edges, p.Edges()...)
	}
	return edges
}

// Walkable reports whether point lies in the walk area. Boundary points are
// walkable as long as they touch only one boundary: a point on the outer
// boundary and a hole, or on two holes, sits in a zero-width gap.
func Walkable(point Point, area WalkArea) bool {
	return walkable(point, area.Outer, area.Holes, nil)
}

// walkable implements Walkable. holeBounds, when non-nil, holds a padded
// bound per hole used to skip the ray cast.
func walkable(point Point, outer Polygon, holes []Polygon, holeBounds []orb.Bound) bool {
	loc := Locate(point, outer)
	if loc == Outside {
		return false
	}
	touching := 0
	for i, hole := range holes {
		if holeBounds != nil && !holeBounds[i].Contains(point.Orb()) {
			continue
		}
		switch Locate(point, hole) {
		case Inside:
			return false
		case OnBoundary:
			touching++
			if loc == OnBoundary || touching > 1 {
				return false
			}
		}
	}
	return true
}

// SegmentInsideWalkArea reports whether the segment ab stays inside the
// walk area: it never leaves the outer polygon and never enters the
// interior of a hole. Every edge of every polygon is tested. Region.SegmentInside
// returns the same answer using a spatial index.
func SegmentInsideWalkArea(a, b Point, area WalkArea) bool {
	return segmentInside(a, b, area.Edges(), func(p Point) bool {
		return walkable(p, area.Outer, area.Holes, nil)
	})
}

// segmentInside rejects ab on any proper crossing with edges, then splits ab
// at every boundary vertex lying on it and requires the midpoint of every
// piece to be walkable. Between two consecutive breakpoints the segment
// touches no boundary, so one midpoint decides the whole piece. Interior
// breakpoints must be walkable too, or the segment could slip through a
// pinch point where two boundaries meet.
func segmentInside(a, b Point, edges []LineSegment, isWalkable func(Point) bool) bool {
	if a.Equal(b) {
		return isWalkable(a)
	}

	breaks := []float64{0, 1}
	for _, e := range edges {
		if SegmentsIntersect(a, b, e.P1, e.P2) {
			return false
		}
		if onSegment(a, b, e.P1) {
			breaks = append(breaks, segmentParam(a, b, e.P1))
		}
		if onSegment(a, b, e.P2) {
			breaks = append(breaks, segmentParam(a, b, e.P2))
		}
	}
	sort.Float64s(breaks)

	for i := 1; i < len(breaks); i++ {
		t0, t1 := breaks[i-1], breaks[i]
		if t1-t0 <= Epsilon {
			continue
		}
		if !isWalkable(lerp(a, b, (t0+t1)/2)) {
			return false
		}
		if t1 < 1-Epsilon && !isWalkable(lerp(a, b, t1)) {
			return false
		}
	}
	return true
}
