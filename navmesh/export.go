package navmesh

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"walkpath/geometry"
)

// Line is one undirected mesh edge.
type Line struct {
	From, To int
	A, B     geometry.Point
	Cost     float64
}

// Lines returns every edge once, ordered by (From, To) with From < To.
func (g *VisibilityGraph) Lines() []Line {
	lines := make([]Line, 0, g.EdgeCount())
	for from, edges := range g.Edges {
		for _, e := range edges {
			if e.To <= from {
				continue
			}
			lines = append(lines, Line{
				From: from,
				To:   e.To,
				A:    g.Nodes[from].Point,
				B:    g.Nodes[e.To].Point,
				Cost: e.Cost,
			})
		}
	}
	return lines
}

// GeoJSON encodes the mesh for visualization: one Point feature per node
// and one LineString feature per edge.
func (g *VisibilityGraph) GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, n := range g.Nodes {
		f := geojson.NewFeature(n.Point.Orb())
		f.Properties["index"] = n.Index
		f.Properties["kind"] = n.Kind.String()
		fc.Append(f)
	}
	for _, l := range g.Lines() {
		f := geojson.NewFeature(orb.LineString{l.A.Orb(), l.B.Orb()})
		f.Properties["from"] = l.From
		f.Properties["to"] = l.To
		f.Properties["cost"] = l.Cost
		fc.Append(f)
	}
	return fc.MarshalJSON()
}

// PathGeoJSON encodes a path as a single LineString feature.
func PathGeoJSON(path Path) ([]byte, error) {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = p.Orb()
	}
	f := geojson.NewFeature(ls)
	f.Properties["length"] = path.Length()
	return f.MarshalJSON()
}
