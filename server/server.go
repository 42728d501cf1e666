// Package server exposes the walk-area registry over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"walkpath/geometry"
	"walkpath/navmesh"
)

type RouteRequest struct {
	Area  string         `json:"area"`
	Start geometry.Point `json:"start"`
	End   geometry.Point `json:"end"`
}

type RouteResponse struct {
	Path     []geometry.Point `json:"path"`
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Distance float64          `json:"distance,omitempty"`
}

type AreaRequest struct {
	Name  string             `json:"name"`
	Outer []geometry.Point   `json:"outer"`
	Holes [][]geometry.Point `json:"holes,omitempty"`
	Force bool               `json:"force,omitempty"`
}

// Server serves route queries against a Registry.
type Server struct {
	reg     *navmesh.Registry
	timeout time.Duration
	find    func(area string, start, end geometry.Point) (navmesh.Path, error)
}

// New creates a Server. Each route query is abandoned after timeout.
func New(reg *navmesh.Registry, timeout time.Duration) *Server {
	return &Server{
		reg:     reg,
		timeout: timeout,
		find: func(area string, start, end geometry.Point) (navmesh.Path, error) {
			return reg.Route(area, start, end)
		},
	}
}

// Handler returns the HTTP routes with CORS enabled.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/route", corsMiddleware(s.routeHandler))
	mux.HandleFunc("/areas", corsMiddleware(s.areasHandler))
	mux.HandleFunc("/mesh", corsMiddleware(s.meshHandler))
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))
	return mux
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to write response: %v\n", err)
	}
}

type result struct {
	path navmesh.Path
	err  error
}

// route runs the query in its own goroutine so an expired deadline can
// answer without waiting for the search.
func (s *Server) route(ctx context.Context, req RouteRequest) (navmesh.Path, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		path, err := s.find(req.Area, req.Start, req.End)
		done <- result{path, err}
	}()

	select {
	case res := <-done:
		return res.path, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Server) routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Area:  %q\n", req.Area)
	log.Printf("   Start: (%.3f, %.3f)\n", req.Start.X, req.Start.Y)
	log.Printf("   End:   (%.3f, %.3f)\n", req.End.X, req.End.Y)

	path, err := s.route(r.Context(), req)
	switch {
	case errors.Is(err, navmesh.ErrUnknownArea):
		log.Printf("❌ %v\n", err)
		writeJSON(w, http.StatusNotFound, RouteResponse{Path: []geometry.Point{}, Message: err.Error()})
		return
	case errors.Is(err, context.Canceled):
		log.Println("⚠️  Client went away, dropping the query")
		return
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("⏱️  Query timed out after %v\n", s.timeout)
		writeJSON(w, http.StatusOK, RouteResponse{Path: []geometry.Point{}, Message: "No path found within the query timeout"})
		return
	case err != nil:
		log.Printf("❌ %v\n", err)
		writeJSON(w, http.StatusBadRequest, RouteResponse{Path: []geometry.Point{}, Message: err.Error()})
		return
	}

	response := RouteResponse{Path: path, Success: len(path) > 0}
	if !response.Success {
		log.Println("❌ No path found")
		response.Message = "No path found"
	} else {
		response.Distance = path.Length()
		log.Printf("✅ Path found with %d waypoints\n", len(path))
		log.Printf("   Distance: %.3f\n", response.Distance)
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) areasHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Build area request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	area := geometry.WalkArea{Outer: geometry.NewPolygon(req.Outer...)}
	for _, h := range req.Holes {
		area.Holes = append(area.Holes, geometry.NewPolygon(h...))
	}

	var graph *navmesh.VisibilityGraph
	var err error
	created := true
	if req.Force {
		graph, err = s.reg.Build(req.Name, area)
	} else {
		graph, created, err = s.reg.BuildIfAbsent(req.Name, area)
	}
	if err != nil {
		log.Printf("❌ %v\n", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if !created {
		log.Printf("⚠️  Area %q already exists\n", req.Name)
		writeJSON(w, http.StatusConflict, map[string]any{
			"success": false,
			"error":   "area already exists",
			"message": "Set 'force: true' to rebuild it.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"name":     req.Name,
		"numNodes": len(graph.Nodes),
		"numEdges": graph.EdgeCount(),
	})
}

// GET /mesh?area=name - mesh nodes and edges as GeoJSON
func (s *Server) meshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.URL.Query().Get("area")
	graph, ok := s.reg.Get(name)
	if !ok {
		http.Error(w, "Unknown area", http.StatusNotFound)
		return
	}

	data, err := graph.GeoJSON()
	if err != nil {
		log.Printf("❌ Failed to encode mesh %q: %v\n", name, err)
		http.Error(w, "Failed to encode mesh", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}

// GET /health - Health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	names := s.reg.Names()
	status := "ready"
	if len(names) == 0 {
		status = "waiting for walk areas"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"areas":  names,
	})
}
