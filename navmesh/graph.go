package navmesh

import (
	"walkpath/astar"
	"walkpath/geometry"
)

// NodeKind tells where a NavNode came from.
type NodeKind int

const (
	ReflexVertex NodeKind = iota // reflex vertex of the outer polygon
	HoleVertex                   // vertex of an obstacle hole
	StartNode                    // query start, overlay only
	GoalNode                     // query goal, overlay only
)

func (k NodeKind) String() string {
	switch k {
	case ReflexVertex:
		return "reflex"
	case HoleVertex:
		return "hole"
	case StartNode:
		return "start"
	case GoalNode:
		return "goal"
	}
	return "unknown"
}

// NavNode is a vertex of the visibility graph. It carries no search state.
type NavNode struct {
	Index int            `json:"index"`
	Point geometry.Point `json:"point"`
	Kind  NodeKind       `json:"kind"`
}

// Edge represents a connection between two nodes with a cost
type Edge = astar.Edge[int]

// VisibilityGraph connects mutually visible mesh vertices of one walk area.
// It is read-only once built and may be shared by concurrent queries.
type VisibilityGraph struct {
	Nodes  []NavNode
	Edges  [][]Edge // by node index, sorted by Edge.To
	region *geometry.Region
}

// Region returns the prepared walk area the graph was built from.
func (g *VisibilityGraph) Region() *geometry.Region {
	return g.region
}

// Neighbors implements astar.Graph.
func (g *VisibilityGraph) Neighbors(i int) []Edge {
	return g.Edges[i]
}

// EdgeCount returns the number of undirected edges.
func (g *VisibilityGraph) EdgeCount() int {
	n := 0
	for _, edges := range g.Edges {
		n += len(edges)
	}
	return n / 2
}

// Path is an ordered list of waypoints from start to goal inclusive. An
// empty path means no path exists.
type Path []geometry.Point

// Length returns the total length of the polyline.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += p[i-1].Distance(p[i])
	}
	return total
}
