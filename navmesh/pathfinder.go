package navmesh

import (
	"fmt"

	"walkpath/astar"
	"walkpath/geometry"
)

type query struct {
	heuristic Heuristic
	smooth    bool
}

// Option configures a single FindPath call.
type Option func(*query)

// WithHeuristic replaces the Euclidean heuristic. A heuristic that
// overestimates still finds a path, but not necessarily the shortest.
func WithHeuristic(h Heuristic) Option {
	return func(q *query) { q.heuristic = h }
}

// WithoutSmoothing returns the raw node chain found by the search.
func WithoutSmoothing() Option {
	return func(q *query) { q.smooth = false }
}

// FindPath returns the shortest walkable path from start to goal.
//
// Start and goal outside the walk area, or inside a hole, are first moved to
// the nearest boundary point (see geometry.Region.Snap). The only error is
// one wrapping geometry.ErrPointOutsideWalkArea, when that fails. An
// unreachable goal is not an error: the returned path is empty.
func FindPath(g *VisibilityGraph, start, goal geometry.Point, opts ...Option) (Path, error) {
	q := query{heuristic: Euclidean{}, smooth: true}
	for _, opt := range opts {
		opt(&q)
	}

	if g == nil {
		return nil, fmt.Errorf("navmesh: no mesh: %w", geometry.ErrPointOutsideWalkArea)
	}
	s, err := g.region.Snap(start)
	if err != nil {
		return nil, fmt.Errorf("navmesh: start: %w", err)
	}
	t, err := g.region.Snap(goal)
	if err != nil {
		return nil, fmt.Errorf("navmesh: goal: %w", err)
	}
	if s.Equal(t) {
		return Path{s}, nil
	}

	ov := newOverlay(g, s, t)
	h := astar.HeuristicFunc[int](func(from, to int) float64 {
		return q.heuristic.Estimate(ov.point(from), ov.point(to))
	})
	ids, ok := astar.FindPath[int](ov, ov.start(), ov.goal(), h)
	if !ok {
		return Path{}, nil
	}

	path := make(Path, len(ids))
	for i, id := range ids {
		path[i] = ov.point(id)
	}
	if q.smooth {
		path = Smooth(g.region, path)
	}
	return path, nil
}
