// Package walkarea loads walk areas from GeoJSON files and prepares them for
// meshing.
package walkarea

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"walkpath/geometry"
)

// Named is a walk area together with the name it is registered under.
type Named struct {
	Name string
	Area geometry.WalkArea
}

// LoadFile reads one GeoJSON FeatureCollection.
func LoadFile(path string) ([]Named, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	areas, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return areas, nil
}

// Parse decodes a FeatureCollection. Every Polygon feature is one walk area
// with ring 0 as the outer boundary and the remaining rings as holes; a
// MultiPolygon yields one area per member. Areas without a "name" property
// are called base-1, base-2, ... in file order.
func Parse(data []byte, base string) ([]Named, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var areas []Named
	name := func(f *geojson.Feature, member int) string {
		if n := f.Properties.MustString("name", ""); n != "" {
			if member > 0 {
				return fmt.Sprintf("%s-%d", n, member+1)
			}
			return n
		}
		return fmt.Sprintf("%s-%d", base, len(areas)+1)
	}

	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if area, ok := fromPolygon(g); ok {
				areas = append(areas, Named{Name: name(f, 0), Area: area})
			}
		case orb.MultiPolygon:
			for i, p := range g {
				if area, ok := fromPolygon(p); ok {
					areas = append(areas, Named{Name: name(f, i), Area: area})
				}
			}
		default:
			log.Printf("⚠️  Skipping %s feature in %s\n", geometryType(f.Geometry), base)
		}
	}
	return areas, nil
}

func fromPolygon(p orb.Polygon) (geometry.WalkArea, bool) {
	if len(p) == 0 {
		return geometry.WalkArea{}, false
	}
	area := geometry.WalkArea{Outer: geometry.PolygonFromRing(p[0])}
	for _, r := range p[1:] {
		area.Holes = append(area.Holes, geometry.PolygonFromRing(r))
	}
	return area, true
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "empty"
	}
	return g.GeoJSONType()
}

// areaFiles lists the *.geojson files of dir in name order.
func areaFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
