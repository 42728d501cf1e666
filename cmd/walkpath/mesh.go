package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func MeshCmd() *cobra.Command {
	var file, area, outFile string
	c := &cobra.Command{
		Use:   "mesh",
		Short: "build an area's visibility graph and print it as GeoJSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := loadMesh(file, area)
			if err != nil {
				return err
			}
			data, err := graph.GeoJSON()
			if err != nil {
				return err
			}
			if outFile != "" {
				return os.WriteFile(outFile, data, 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	c.Flags().StringVar(&file, "file", "", "GeoJSON walk-area file")
	c.Flags().StringVar(&area, "area", "", "area name (default: first in file)")
	c.Flags().StringVarP(&outFile, "out", "o", "", "write to this file instead of stdout")
	c.MarkFlagRequired("file")
	return c
}
