// Package astar is a generic A* search over any graph whose nodes are
// comparable values. The cost model lives in the graph (edge costs) and the
// remaining-cost estimate is a pluggable Heuristic.
//
// All per-search bookkeeping (best cost, predecessor, open/closed state) is
// kept in a table owned by a single call, so one graph can serve concurrent
// searches as long as the graph itself is not mutated.
package astar

import (
	"container/heap"
	"slices"
)

// Edge is a directed connection to To with a traversal cost.
type Edge[N comparable] struct {
	To   N
	Cost float64
}

// Graph yields the outgoing edges of a node. Neighbors must return edges in
// a stable order for results to be reproducible.
type Graph[N comparable] interface {
	Neighbors(n N) []Edge[N]
}

// CostFunc returns the cost of moving between two adjacent nodes.
type CostFunc[N any] func(from, to N) float64

// Heuristic estimates the remaining cost from a node to the goal. It must
// never overestimate for the result to be a shortest path.
type Heuristic[N any] interface {
	Estimate(from, goal N) float64
}

// HeuristicFunc adapts a function to Heuristic.
type HeuristicFunc[N any] func(from, goal N) float64

func (f HeuristicFunc[N]) Estimate(from, goal N) float64 {
	return f(from, goal)
}

// Zero is the heuristic that always returns 0, turning A* into Dijkstra.
func Zero[N any]() Heuristic[N] {
	return HeuristicFunc[N](func(N, N) float64 { return 0 })
}

// FuncGraph is a Graph built from a neighbor function and a cost function,
// for graphs that do not store edge costs.
type FuncGraph[N comparable] struct {
	Next func(n N) []N
	Cost CostFunc[N]
}

func (g FuncGraph[N]) Neighbors(n N) []Edge[N] {
	next := g.Next(n)
	edges := make([]Edge[N], len(next))
	for i, m := range next {
		edges[i] = Edge[N]{To: m, Cost: g.Cost(n, m)}
	}
	return edges
}

// Stats describes one search.
type Stats struct {
	Expanded int // nodes popped from the open set
	Pushed   int // pushes and reinsertions into the open set
}

// node represents a node in the A* search
type node[N comparable] struct {
	id     N
	g      float64 // cost from start to this node
	h      float64 // heuristic cost from this node to goal
	f      float64 // g + h
	parent *node[N]
	seq    uint64 // insertion order, for stable tie-breaking
	index  int    // index in the heap, -1 when not queued
	closed bool
}

// priorityQueue implements heap.Interface ordered by f, then h, then
// insertion order.
type priorityQueue[N comparable] []*node[N]

func (pq priorityQueue[N]) Len() int { return len(pq) }

func (pq priorityQueue[N]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue[N]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue[N]) Push(x any) {
	n := len(*pq)
	item := x.(*node[N])
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// FindPath returns the cheapest node sequence from start to goal, both
// included, or nil and false when goal is unreachable.
func FindPath[N comparable](g Graph[N], start, goal N, h Heuristic[N]) ([]N, bool) {
	path, ok, _ := Search(g, start, goal, h)
	return path, ok
}

// Search is FindPath that also reports search statistics.
func Search[N comparable](g Graph[N], start, goal N, h Heuristic[N]) ([]N, bool, Stats) {
	var stats Stats
	var seq uint64

	openSet := &priorityQueue[N]{}
	heap.Init(openSet)

	nodes := make(map[N]*node[N])

	first := &node[N]{id: start, h: h.Estimate(start, goal)}
	first.f = first.h
	nodes[start] = first
	heap.Push(openSet, first)
	stats.Pushed++

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*node[N])
		stats.Expanded++

		if current.id == goal {
			return reconstruct(current), true, stats
		}

		current.closed = true

		for _, edge := range g.Neighbors(current.id) {
			neighbor, seen := nodes[edge.To]
			if seen && neighbor.closed {
				continue
			}

			tentativeG := current.g + edge.Cost

			if !seen {
				seq++
				neighbor = &node[N]{
					id:     edge.To,
					g:      tentativeG,
					h:      h.Estimate(edge.To, goal),
					parent: current,
					seq:    seq,
				}
				neighbor.f = neighbor.g + neighbor.h
				nodes[edge.To] = neighbor
				heap.Push(openSet, neighbor)
				stats.Pushed++
			} else if tentativeG < neighbor.g {
				// Found a better path to this neighbor
				seq++
				neighbor.g = tentativeG
				neighbor.f = neighbor.g + neighbor.h
				neighbor.parent = current
				neighbor.seq = seq
				heap.Fix(openSet, neighbor.index)
				stats.Pushed++
			}
		}
	}

	return nil, false, stats
}

func reconstruct[N comparable](end *node[N]) []N {
	var path []N
	for n := end; n != nil; n = n.parent {
		path = append(path, n.id)
	}
	slices.Reverse(path)
	return path
}
