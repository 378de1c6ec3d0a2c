package sensorcfg

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

// DefaultSearchPaths are tried in order when no explicit path is configured.
// The first readable file is authoritative.
var DefaultSearchPaths = []string{
	"sensor_config.json",
	"/app/backend/data/sensor_config.json",
	"/etc/buildsense/sensor_config.json",
}

// Resolver loads the sensor config and caches the parsed snapshot. The first
// successful load publishes; concurrent loaders adopt the published snapshot
// without locking, and readers never observe a partial structure.
type Resolver struct {
	path     string
	snapshot atomic.Pointer[Snapshot]
}

// NewResolver returns a resolver. An empty path enables the default search.
func NewResolver(path string) *Resolver {
	return &Resolver{path: strings.TrimSpace(path)}
}

// Load returns the cached snapshot, reading and publishing on first use.
func (r *Resolver) Load() (*Snapshot, error) {
	if snap := r.snapshot.Load(); snap != nil {
		return snap, nil
	}

	snap, err := r.read()
	if err != nil {
		return nil, err
	}

	if r.snapshot.CompareAndSwap(nil, snap) {
		return snap, nil
	}
	if cur := r.snapshot.Load(); cur != nil {
		return cur, nil
	}
	return snap, nil
}

// Invalidate drops the cached snapshot so the next Load re-reads the file.
func (r *Resolver) Invalidate() {
	r.snapshot.Store(nil)
}

func (r *Resolver) read() (*Snapshot, error) {
	for _, path := range r.candidates() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		snap, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		snap.Path = path
		return snap, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(r.candidates(), ", "))
}

func (r *Resolver) candidates() []string {
	if r.path != "" {
		return []string{r.path}
	}
	return DefaultSearchPaths
}
