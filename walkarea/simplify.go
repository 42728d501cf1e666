package walkarea

import (
	"github.com/paulmach/orb/simplify"

	"walkpath/geometry"
)

// Simplify reduces every ring of area with Douglas-Peucker. A ring that would
// drop below three vertices is kept as it was. A tolerance <= 0 returns area
// unchanged.
func Simplify(area geometry.WalkArea, tolerance float64) geometry.WalkArea {
	if tolerance <= 0 {
		return area
	}
	out := geometry.WalkArea{Outer: simplifyPolygon(area.Outer, tolerance)}
	for _, h := range area.Holes {
		out.Holes = append(out.Holes, simplifyPolygon(h, tolerance))
	}
	return out
}

func simplifyPolygon(p geometry.Polygon, tolerance float64) geometry.Polygon {
	if len(p.Vertices) <= 3 {
		return p
	}
	// the closed ring keeps its first vertex fixed
	ring := simplify.DouglasPeucker(tolerance).Ring(p.Ring())
	simplified := geometry.PolygonFromRing(ring)
	if len(simplified.Vertices) < 3 {
		return p
	}
	return simplified
}
