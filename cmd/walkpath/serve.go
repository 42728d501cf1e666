package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"walkpath/config"
	"walkpath/navmesh"
	"walkpath/server"
	"walkpath/walkarea"
)

func ServeCmd() *cobra.Command {
	var configFile string
	c := &cobra.Command{
		Use:   "serve",
		Short: "serve route queries over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	c.Flags().StringVar(&configFile, "config", "", "YAML config file")
	return c
}

func serve(cfg config.Config) error {
	log.Println("========================================")
	log.Println("🚀 Walkpath Server")
	log.Println("========================================")

	reg := navmesh.NewRegistry()
	syncer := walkarea.NewSyncer(reg, walkarea.Options{
		SimplifyTolerance:    cfg.SimplifyTolerance,
		RemoveContainedHoles: cfg.RemoveContainedHoles,
	})
	if err := syncer.LoadDir(cfg.AreasDir); err != nil {
		log.Printf("⚠️  Some walk areas failed to build: %v\n", err)
	}

	if cfg.Watch {
		w, err := walkarea.NewWatcher(cfg.AreasDir)
		if err != nil {
			return err
		}
		defer w.Close()
		go syncer.Watch(w)
		log.Printf("👀 Watching %s for changes\n", cfg.AreasDir)
	}

	log.Printf("Server starting on %s\n", cfg.Listen)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /route    - Compute a walking path in an area")
	log.Println("  POST /areas    - Build or replace a walk area")
	log.Println("  GET  /mesh     - Get an area's mesh as GeoJSON")
	log.Println("  GET  /health   - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")

	return http.ListenAndServe(cfg.Listen, server.New(reg, cfg.QueryTimeout).Handler())
}
