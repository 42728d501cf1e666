package navmesh

import "walkpath/geometry"

// Smooth pulls path taut: consecutive duplicates are dropped, and each
// interior waypoint is removed when the last kept waypoint can see the one
// after it. Passes repeat until nothing changes, so Smooth(Smooth(p)) equals
// Smooth(p).
func Smooth(region *geometry.Region, path Path) Path {
	pts := dedupe(path)
	for {
		next, removed := pullTaut(region, pts)
		if !removed {
			return next
		}
		pts = next
	}
}

func dedupe(path Path) Path {
	out := make(Path, 0, len(path))
	for _, p := range path {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func pullTaut(region *geometry.Region, pts Path) (Path, bool) {
	if len(pts) < 3 {
		return pts, false
	}

	out := Path{pts[0]}
	anchor := pts[0]
	removed := false
	for i := 1; i < len(pts)-1; i++ {
		if region.SegmentInside(anchor, pts[i+1]) {
			removed = true
			continue
		}
		out = append(out, pts[i])
		anchor = pts[i]
	}
	return append(out, pts[len(pts)-1]), removed
}
