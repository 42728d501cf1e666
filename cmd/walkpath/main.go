package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"walkpath/geometry"
	"walkpath/navmesh"
	"walkpath/walkarea"
)

func main() {
	root := &cobra.Command{
		Use:          "walkpath",
		Short:        "shortest walking paths through polygonal walk areas",
		SilenceUsage: true,
	}
	root.AddCommand(ServeCmd(), RouteCmd(), MeshCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parsePoint reads "x,y".
func parsePoint(s string) (geometry.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geometry.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geometry.Pt(x, y), nil
}

// loadMesh builds the named area from file. An empty name picks the first
// area in the file.
func loadMesh(file, name string) (*navmesh.VisibilityGraph, error) {
	areas, err := walkarea.LoadFile(file)
	if err != nil {
		return nil, err
	}
	for _, a := range areas {
		if name == "" || a.Name == name {
			return navmesh.BuildMesh(a.Area)
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", navmesh.ErrUnknownArea, name, file)
}
