package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry marks a walk area that cannot be meshed.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrPointOutsideWalkArea marks a start or goal that cannot be placed
	// in the walk area, even after snapping.
	ErrPointOutsideWalkArea = errors.New("point outside walk area")
)

// GeometryError describes why a walk area was rejected.
type GeometryError struct {
	Hole   int // -1 for the outer polygon
	Reason string
}

func (e *GeometryError) Error() string {
	if e.Hole < 0 {
		return fmt.Sprintf("%v: outer polygon: %s", ErrInvalidGeometry, e.Reason)
	}
	return fmt.Sprintf("%v: hole %d: %s", ErrInvalidGeometry, e.Hole, e.Reason)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

func invalid(hole int, format string, args ...any) error {
	return &GeometryError{Hole: hole, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks every invariant of a walk area: each polygon has at least
// three distinct vertices, non-zero area and no self-intersection; each hole
// lies inside the outer polygon (touching its boundary is allowed) and no
// two holes overlap. The area should be normalized first.
func Validate(area WalkArea) error {
	if err := validatePolygon(area.Outer, -1); err != nil {
		return err
	}
	for i, hole := range area.Holes {
		if err := validatePolygon(hole, i); err != nil {
			return err
		}
		if err := validateContained(hole, area.Outer, i); err != nil {
			return err
		}
	}
	for i := 0; i < len(area.Holes); i++ {
		for j := i + 1; j < len(area.Holes); j++ {
			if holesOverlap(area.Holes[i], area.Holes[j]) {
				return invalid(j, "overlaps hole %d", i)
			}
		}
	}
	return nil
}

func validatePolygon(p Polygon, hole int) error {
	n := len(p.Vertices)
	distinct := make([]Point, 0, n)
	for _, v := range p.Vertices {
		seen := false
		for _, d := range distinct {
			if d.Equal(v) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, v)
		}
	}
	if len(distinct) < 3 {
		return invalid(hole, "needs at least 3 distinct vertices, got %d", len(distinct))
	}
	if p.Area() <= Epsilon {
		return invalid(hole, "zero area")
	}

	for i := 0; i < n; i++ {
		// adjacent edges may only share their common vertex
		prev := p.Vertices[(i+n-1)%n]
		next := p.Vertices[(i+1)%n]
		v := p.Vertices[i]
		if orientation(prev, v, next) == 0 &&
			(prev.X-v.X)*(next.X-v.X)+(prev.Y-v.Y)*(next.Y-v.Y) > 0 {
			return invalid(hole, "edges fold back at vertex %d", i)
		}
	}
	for i := 0; i < n; i++ {
		ei := p.Edge(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			ej := p.Edge(j)
			if segmentsTouch(ei.P1, ei.P2, ej.P1, ej.P2) {
				return invalid(hole, "self-intersection between edges %d and %d", i, j)
			}
		}
	}
	return nil
}

func validateContained(hole, outer Polygon, idx int) error {
	for i, v := range hole.Vertices {
		if Locate(v, outer) == Outside {
			return invalid(idx, "vertex %d lies outside the outer polygon", i)
		}
	}
	for i, e := range hole.Edges() {
		if Locate(e.Midpoint(), outer) == Outside {
			return invalid(idx, "edge %d leaves the outer polygon", i)
		}
		for _, o := range outer.Edges() {
			if SegmentsIntersect(e.P1, e.P2, o.P1, o.P2) {
				return invalid(idx, "edge %d crosses the outer polygon", i)
			}
		}
	}
	return nil
}

func holesOverlap(a, b Polygon) bool {
	for _, v := range a.Vertices {
		if Locate(v, b) == Inside {
			return true
		}
	}
	for _, v := range b.Vertices {
		if Locate(v, a) == Inside {
			return true
		}
	}
	for _, ea := range a.Edges() {
		if Locate(ea.Midpoint(), b) == Inside {
			return true
		}
		for _, eb := range b.Edges() {
			if SegmentsIntersect(ea.P1, ea.P2, eb.P1, eb.P2) {
				return true
			}
		}
	}
	for _, eb := range b.Edges() {
		if Locate(eb.Midpoint(), a) == Inside {
			return true
		}
	}
	return false
}
