package sensorcfg

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func assertIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got %v, want %v", err, target)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sensor_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadReadsExplicitPath(t *testing.T) {
	path := writeConfig(t, `{"room_to_sensor_map": {"r1": "s1"}}`)

	snap, err := NewResolver(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Path != path {
		t.Fatalf("wrong path recorded: %s", snap.Path)
	}
	if snap.SensorsFor("r1")["default"] != "s1" {
		t.Fatalf("mapping lost: %v", snap.RoomSensors)
	}
}

func TestLoadFailsWhenNoCandidateExists(t *testing.T) {
	_, err := NewResolver(filepath.Join(t.TempDir(), "missing.json")).Load()
	assertIs(t, err, ErrNotFound)
}

func TestLoadFailsLoudlyOnReadableMalformedFile(t *testing.T) {
	// A readable candidate is authoritative; a broken one must not fall
	// through to the next path.
	path := writeConfig(t, `{"no_map_here": true}`)
	_, err := NewResolver(path).Load()
	assertIs(t, err, ErrMalformed)
}

func TestLoadCachesFirstSnapshot(t *testing.T) {
	path := writeConfig(t, `{"room_to_sensor_map": {"r1": "s1"}}`)
	resolver := NewResolver(path)

	first, err := resolver.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// The file changes on disk, but the cached snapshot keeps serving.
	if err := os.WriteFile(path, []byte(`{"room_to_sensor_map": {"r1": "s2"}}`), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	second, err := resolver.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if first != second {
		t.Fatal("cache miss: second load returned a new snapshot")
	}

	resolver.Invalidate()
	third, err := resolver.Load()
	if err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if third.SensorsFor("r1")["default"] != "s2" {
		t.Fatalf("invalidate did not re-read: %v", third.RoomSensors)
	}
}

func TestConcurrentFirstLoadsAdoptOneSnapshot(t *testing.T) {
	path := writeConfig(t, `{"room_to_sensor_map": {"r1": "s1"}}`)
	resolver := NewResolver(path)

	const loaders = 32
	snaps := make([]*Snapshot, loaders)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	for i := 0; i < loaders; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			snap, err := resolver.Load()
			if err != nil {
				t.Errorf("loader %d: %v", i, err)
				return
			}
			snaps[i] = snap
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 1; i < loaders; i++ {
		if snaps[i] != snaps[0] {
			t.Fatalf("loader %d observed a different snapshot", i)
		}
	}
}
