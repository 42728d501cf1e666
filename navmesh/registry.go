package navmesh

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"walkpath/geometry"
)

// ErrUnknownArea is returned for a walk area name with no mesh.
var ErrUnknownArea = errors.New("navmesh: unknown walk area")

// Registry holds the current mesh of every named walk area. Rebuilds happen
// outside the lock and are swapped in whole, so a query sees either the old
// mesh or the new one, never a partial graph.
type Registry struct {
	mu     sync.RWMutex
	meshes map[string]*VisibilityGraph
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{meshes: make(map[string]*VisibilityGraph)}
}

// Build meshes area and stores it under name, replacing any previous mesh.
// On error the previous mesh is kept.
func (r *Registry) Build(name string, area geometry.WalkArea) (*VisibilityGraph, error) {
	graph, err := build(name, area)
	if err != nil {
		return nil, err
	}
	r.Set(name, graph)
	return graph, nil
}

// BuildIfAbsent is Build for a name that must not exist yet. If a mesh is
// already stored under name, or one is stored while area is being meshed,
// that mesh is returned with created false and nothing is replaced.
func (r *Registry) BuildIfAbsent(name string, area geometry.WalkArea) (graph *VisibilityGraph, created bool, err error) {
	if existing, ok := r.Get(name); ok {
		return existing, false, nil
	}
	graph, err = build(name, area)
	if err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.meshes[name]; ok {
		return existing, false, nil
	}
	r.meshes[name] = graph
	return graph, true, nil
}

func build(name string, area geometry.WalkArea) (*VisibilityGraph, error) {
	startTime := time.Now()
	log.Printf("🗺️  Building mesh %q...\n", name)

	graph, err := BuildMesh(area)
	if err != nil {
		return nil, fmt.Errorf("area %q: %w", name, err)
	}

	log.Printf("   ✅ Mesh %q ready: %d nodes, %d edges in %v\n", name, len(graph.Nodes), graph.EdgeCount(), time.Since(startTime))
	return graph, nil
}

// Set stores graph under name.
func (r *Registry) Set(name string, graph *VisibilityGraph) {
	r.mu.Lock()
	r.meshes[name] = graph
	r.mu.Unlock()
}

// Get returns the mesh stored under name.
func (r *Registry) Get(name string) (*VisibilityGraph, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	graph, ok := r.meshes[name]
	return graph, ok
}

// Remove deletes name and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.meshes[name]
	delete(r.meshes, name)
	return ok
}

// Names returns the stored area names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.meshes))
	for name := range r.meshes {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Route runs FindPath on the mesh stored under name.
func (r *Registry) Route(name string, start, goal geometry.Point, opts ...Option) (Path, error) {
	graph, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArea, name)
	}
	return FindPath(graph, start, goal, opts...)
}
