package walkarea

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"
	"sync"

	"walkpath/geometry"
	"walkpath/navmesh"
)

// Options control how loaded areas are cleaned up before meshing.
type Options struct {
	SimplifyTolerance    float64
	RemoveContainedHoles bool
}

// Prepare applies o to area.
func (o Options) Prepare(area geometry.WalkArea) geometry.WalkArea {
	area = area.Normalize()
	if o.RemoveContainedHoles {
		area = RemoveContainedHoles(area)
	}
	return Simplify(area, o.SimplifyTolerance)
}

// Syncer keeps a registry in step with the walk-area files on disk. It
// remembers which areas came from which file so a deleted or rewritten file
// drops the areas it no longer defines.
type Syncer struct {
	reg  *navmesh.Registry
	opts Options

	mu    sync.Mutex
	files map[string][]string
}

// NewSyncer creates a Syncer feeding reg.
func NewSyncer(reg *navmesh.Registry, opts Options) *Syncer {
	return &Syncer{reg: reg, opts: opts, files: make(map[string][]string)}
}

// LoadDir builds every area of every *.geojson file in dir, in name order.
// Files that cannot be parsed and areas that fail to build are reported
// together; everything else is registered.
func (s *Syncer) LoadDir(dir string) error {
	files, err := areaFiles(dir)
	if err != nil {
		return err
	}

	log.Printf("Loading walk areas from %d GeoJSON files...\n", len(files))
	var errs []error
	for _, file := range files {
		if err := s.Reload(file); err != nil {
			errs = append(errs, err)
		}
	}
	log.Printf("Total walk areas registered: %d\n", len(s.reg.Names()))
	return errors.Join(errs...)
}

// Reload rebuilds the areas defined by path. If path no longer exists its
// areas are removed.
func (s *Syncer) Reload(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		for _, name := range s.files[path] {
			s.reg.Remove(name)
			log.Printf("🗑️  Removed walk area %q\n", name)
		}
		delete(s.files, path)
		return nil
	}
	if err != nil {
		return err
	}

	// an area that fails to rebuild keeps its previous mesh
	var errs []error
	keep := make(map[string]bool, len(areas))
	names := make([]string, 0, len(areas))
	for _, a := range areas {
		keep[a.Name] = true
		if _, err := s.reg.Build(a.Name, s.opts.Prepare(a.Area)); err != nil {
			errs = append(errs, err)
			if _, ok := s.reg.Get(a.Name); !ok {
				continue
			}
		}
		names = append(names, a.Name)
	}
	for _, name := range s.files[path] {
		if !keep[name] {
			s.reg.Remove(name)
			log.Printf("🗑️  Removed walk area %q\n", name)
		}
	}
	s.files[path] = names
	log.Printf("   ✅ Registered %d walk areas from %s\n", len(names), filepath.Base(path))
	return errors.Join(errs...)
}

// Watch reloads files reported by w until its Events channel closes.
func (s *Syncer) Watch(w *Watcher) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("🔄 %s changed, reloading\n", filepath.Base(path))
			if err := s.Reload(path); err != nil {
				log.Printf("⚠️  Reload of %s failed: %v\n", path, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️  Watcher error: %v\n", err)
		}
	}
}
