package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"walkpath/navmesh"
)

func RouteCmd() *cobra.Command {
	var file, area, from, to string
	var geoJSON bool
	c := &cobra.Command{
		Use:   "route",
		Short: "print the shortest path between two points",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(from)
			if err != nil {
				return err
			}
			goal, err := parsePoint(to)
			if err != nil {
				return err
			}
			graph, err := loadMesh(file, area)
			if err != nil {
				return err
			}
			path, err := navmesh.FindPath(graph, start, goal)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if geoJSON {
				data, err := navmesh.PathGeoJSON(path)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			if len(path) == 0 {
				fmt.Fprintln(out, "no path")
				return nil
			}
			for _, p := range path {
				fmt.Fprintf(out, "%g,%g\n", p.X, p.Y)
			}
			fmt.Fprintf(out, "length %g\n", path.Length())
			return nil
		},
	}
	c.Flags().StringVar(&file, "file", "", "GeoJSON walk-area file")
	c.Flags().StringVar(&area, "area", "", "area name (default: first in file)")
	c.Flags().StringVar(&from, "from", "", "start point x,y")
	c.Flags().StringVar(&to, "to", "", "goal point x,y")
	c.Flags().BoolVar(&geoJSON, "geojson", false, "print the path as a GeoJSON feature")
	c.MarkFlagRequired("file")
	c.MarkFlagRequired("from")
	c.MarkFlagRequired("to")
	return c
}
