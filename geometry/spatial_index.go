package geometry

import (
	"github.com/dhconnelly/rtreego"
)

// edgeEntry wraps a boundary edge for R-tree storage
type edgeEntry struct {
	Segment LineSegment
	Index   int // position in WalkArea.Edges
	BBox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *edgeEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// edgeIndex answers "which boundary edges could touch this segment"
type edgeIndex struct {
	tree  *rtreego.Rtree
	edges []LineSegment
}

// newEdgeIndex indexes edges by their padded bounding boxes
func newEdgeIndex(edges []LineSegment) *edgeIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, e := range edges {
		bbox, err := segmentRect(e)
		if err == nil {
			tree.Insert(&edgeEntry{Segment: e, Index: i, BBox: bbox})
		}
	}

	return &edgeIndex{tree: tree, edges: edges}
}

// Query returns the edges whose bounding boxes meet the bounding box of seg.
// Falls back to every edge if the query box cannot be built.
func (ix *edgeIndex) Query(seg LineSegment) []LineSegment {
	bbox, err := segmentRect(seg)
	if err != nil {
		return ix.edges
	}

	results := ix.tree.SearchIntersect(bbox)
	edges := make([]LineSegment, 0, len(results))
	for _, item := range results {
		edges = append(edges, item.(*edgeEntry).Segment)
	}
	return edges
}

// segmentRect computes the axis-aligned bounding box of a segment, padded by
// Epsilon so axis-parallel edges still have positive extent.
func segmentRect(seg LineSegment) (rtreego.Rect, error) {
	b := seg.bound()
	return rtreego.NewRect(
		rtreego.Point{b.Min[0] - Epsilon, b.Min[1] - Epsilon},
		[]float64{b.Max[0] - b.Min[0] + 2*Epsilon, b.Max[1] - b.Min[1] + 2*Epsilon},
	)
}
