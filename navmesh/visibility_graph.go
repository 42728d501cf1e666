// Package navmesh builds visibility graphs over walk areas and answers
// shortest-path queries on them.
package navmesh

import (
	"fmt"
	"log"

	"walkpath/geometry"
)

// BuildMesh validates area and constructs its visibility graph. The result
// depends only on the geometry: the same input always yields the same nodes
// in the same order and the same edge set.
func BuildMesh(area geometry.WalkArea) (*VisibilityGraph, error) {
	region, err := geometry.NewRegion(area)
	if err != nil {
		return nil, fmt.Errorf("navmesh: build mesh: %w", err)
	}
	return BuildMeshFromRegion(region), nil
}

// BuildMeshFromRegion constructs the visibility graph of an already
// prepared region.
//
// Candidate nodes are the reflex vertices of the outer polygon and every
// walkable vertex of every hole; convex outer vertices can never be a turning
// point of a shortest path. Vertices closer than geometry.Epsilon collapse
// into the first one. Every pair of candidates with line of sight gets a
// bidirectional edge costing the Euclidean distance.
func BuildMeshFromRegion(region *geometry.Region) *VisibilityGraph {
	area := region.Area()
	graph := &VisibilityGraph{region: region}
	var seen []geometry.Point
	skipped := 0

	addNode := func(p geometry.Point, kind NodeKind) {
		// Skip if vertex is already seen (e.g., shared vertices)
		for _, q := range seen {
			if q.Equal(p) {
				return
			}
		}
		seen = append(seen, p)
		// a vertex sitting in a zero-width gap is not walkable
		if !region.Walkable(p) {
			skipped++
			return
		}
		idx := len(graph.Nodes)
		graph.Nodes = append(graph.Nodes, NavNode{Index: idx, Point: p, Kind: kind})
	}

	reflex := area.Outer.ReflexVertices()
	for _, i := range reflex {
		addNode(area.Outer.Vertices[i], ReflexVertex)
	}
	holeVertices := 0
	for _, hole := range area.Holes {
		for _, v := range hole.Vertices {
			addNode(v, HoleVertex)
			holeVertices++
		}
	}

	totalNodes := len(graph.Nodes)
	log.Printf("   Candidate vertices: %d reflex, %d hole, %d unique nodes (%d in gaps)\n", len(reflex), holeVertices, totalNodes, skipped)

	// Build edges: connect nodes that have line-of-sight
	graph.Edges = make([][]Edge, totalNodes)
	edgesAdded := 0
	for i := 0; i < totalNodes; i++ {
		for j := i + 1; j < totalNodes; j++ {
			a, b := graph.Nodes[i].Point, graph.Nodes[j].Point
			if !region.SegmentInside(a, b) {
				continue
			}
			cost := a.Distance(b)

			// Add bidirectional edge; j ascends so both lists stay sorted
			graph.Edges[i] = append(graph.Edges[i], Edge{To: j, Cost: cost})
			graph.Edges[j] = append(graph.Edges[j], Edge{To: i, Cost: cost})
			edgesAdded++
		}
	}

	log.Printf("   Edges added: %d of %d pairs\n", edgesAdded, totalNodes*(totalNodes-1)/2)

	return graph
}
