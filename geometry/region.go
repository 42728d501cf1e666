package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Region is a validated, immutable walk area prepared for repeated
// visibility queries. It is safe for concurrent use.
type Region struct {
	area       WalkArea
	edges      []LineSegment
	holeBounds []orb.Bound
	index      *edgeIndex
}

// NewRegion normalizes and validates area and indexes its boundary edges.
func NewRegion(area WalkArea) (*Region, error) {
	area = area.Normalize()
	if err := Validate(area); err != nil {
		return nil, err
	}

	edges := area.Edges()
	bounds := make([]orb.Bound, len(area.Holes))
	for i, h := range area.Holes {
		bounds[i] = h.Bound().Pad(Epsilon)
	}
	return &Region{
		area:       area,
		edges:      edges,
		holeBounds: bounds,
		index:      newEdgeIndex(edges),
	}, nil
}

// Area returns the normalized walk area.
func (r *Region) Area() WalkArea {
	return r.area
}

// Edges returns the boundary edges in edge-index order.
func (r *Region) Edges() []LineSegment {
	return r.edges
}

// Walkable is Walkable(p, r.Area()).
func (r *Region) Walkable(p Point) bool {
	return walkable(p, r.area.Outer, r.area.Holes, r.holeBounds)
}

// SegmentInside is SegmentInsideWalkArea(a, b, r.Area()), restricted to the
// edges whose bounds meet the segment.
func (r *Region) SegmentInside(a, b Point) bool {
	edges := r.index.Query(LineSegment{P1: a, P2: b})
	return segmentInside(a, b, edges, r.Walkable)
}

// Snap returns p if it is walkable. Otherwise it returns the nearest point
// on the boundary; on equal distance the edge with the lowest index wins,
// which is the edge starting at the lowest vertex index. It fails with
// ErrPointOutsideWalkArea when the region is empty or the snapped point is
// still not walkable.
func (r *Region) Snap(p Point) (Point, error) {
	if r == nil || len(r.edges) == 0 {
		return p, fmt.Errorf("%w: empty walk area", ErrPointOutsideWalkArea)
	}
	if r.Walkable(p) {
		return p, nil
	}

	best := p
	bestDist := math.Inf(1)
	for _, e := range r.edges {
		q := e.ClosestPoint(p)
		if d := p.Distance(q); d < bestDist-Epsilon {
			best, bestDist = q, d
		}
	}
	if !r.Walkable(best) {
		return p, fmt.Errorf("%w: (%g, %g)", ErrPointOutsideWalkArea, p.X, p.Y)
	}
	return best, nil
}
