package navmesh

import (
	"walkpath/geometry"
)

// overlay is a per-query view of a VisibilityGraph with two extra nodes,
// start (index n) and goal (index n+1), and only the edges touching them.
// The base graph is never modified.
type overlay struct {
	base  *VisibilityGraph
	ends  [2]geometry.Point
	extra map[int][]Edge
}

// newOverlay links start and goal to every mesh node they can see, and to
// each other.
func newOverlay(base *VisibilityGraph, start, goal geometry.Point) *overlay {
	o := &overlay{
		base:  base,
		ends:  [2]geometry.Point{start, goal},
		extra: make(map[int][]Edge),
	}
	region := base.region
	for i, node := range base.Nodes {
		for k, p := range o.ends {
			if region.SegmentInside(p, node.Point) {
				o.link(o.start()+k, i, p.Distance(node.Point))
			}
		}
	}
	if region.SegmentInside(start, goal) {
		o.link(o.start(), o.goal(), start.Distance(goal))
	}
	return o
}

func (o *overlay) start() int { return len(o.base.Nodes) }
func (o *overlay) goal() int  { return len(o.base.Nodes) + 1 }

func (o *overlay) link(a, b int, cost float64) {
	o.extra[a] = append(o.extra[a], Edge{To: b, Cost: cost})
	o.extra[b] = append(o.extra[b], Edge{To: a, Cost: cost})
}

// Neighbors implements astar.Graph by merging base and overlay edges.
func (o *overlay) Neighbors(id int) []Edge {
	extra := o.extra[id]
	if id >= len(o.base.Nodes) {
		return extra
	}
	base := o.base.Edges[id]
	if len(extra) == 0 {
		return base
	}
	merged := make([]Edge, 0, len(base)+len(extra))
	merged = append(merged, base...)
	return append(merged, extra...)
}

// point returns the coordinate of a base or overlay node.
func (o *overlay) point(id int) geometry.Point {
	if n := len(o.base.Nodes); id >= n {
		return o.ends[id-n]
	}
	return o.base.Nodes[id].Point
}
