package walkarea

import (
	"log"

	"github.com/paulmach/orb"

	"walkpath/geometry"
)

// RemoveContainedHoles drops holes that lie entirely inside another hole.
// They add vertices to the mesh without changing what is walkable.
func RemoveContainedHoles(area geometry.WalkArea) geometry.WalkArea {
	if len(area.Holes) <= 1 {
		return area
	}

	holes := area.Holes
	contained := make([]bool, len(holes))
	for i := range holes {
		if contained[i] {
			continue
		}
		for j := range holes {
			if i == j || contained[j] {
				continue
			}
			if containedIn(holes[i], holes[j]) {
				contained[i] = true
				break
			}
		}
	}

	out := geometry.WalkArea{Outer: area.Outer}
	for i, h := range holes {
		if !contained[i] {
			out.Holes = append(out.Holes, h)
		}
	}
	if removed := len(holes) - len(out.Holes); removed > 0 {
		log.Printf("   Holes after removing contained: %d (removed %d)\n", len(out.Holes), removed)
	}
	return out
}

// containedIn reports whether every vertex of a is inside or on b.
func containedIn(a, b geometry.Polygon) bool {
	if len(a.Vertices) == 0 || len(b.Vertices) == 0 {
		return false
	}
	if !boundContains(b.Bound(), a.Bound()) {
		return false
	}
	for _, v := range a.Vertices {
		if !geometry.PointInPolygon(v, b) {
			return false
		}
	}
	return true
}

func boundContains(outer, inner orb.Bound) bool {
	return outer.Contains(inner.Min) && outer.Contains(inner.Max)
}
