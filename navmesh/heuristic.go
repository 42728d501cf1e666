package navmesh

import "walkpath/geometry"

// Heuristic estimates the remaining cost between two points. Swap it per
// query with WithHeuristic; the search engine does not change.
type Heuristic interface {
	Estimate(from, goal geometry.Point) float64
}

// HeuristicFunc adapts a function to Heuristic.
type HeuristicFunc func(from, goal geometry.Point) float64

func (f HeuristicFunc) Estimate(from, goal geometry.Point) float64 {
	return f(from, goal)
}

// Euclidean is the straight-line distance. Edge costs are Euclidean too, so
// it never overestimates and the search returns a shortest path.
type Euclidean struct{}

func (Euclidean) Estimate(from, goal geometry.Point) float64 {
	return from.Distance(goal)
}
