package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxelgen.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.World.Seed != DefaultSeed || cfg.Pool.Mesher != "greedy" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Pool.Workers < MinWorkers || cfg.Pool.Workers > MaxWorkers {
		t.Fatalf("default workers %d out of range", cfg.Pool.Workers)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 42
pool:
  workers: 3
  radius: 4
  mesher: Naive
storage:
  snapshot_dir: /tmp/snaps
log:
  level: DEBUG
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.World.Seed)
	}
	if cfg.Pool.Workers != 3 || cfg.Pool.Radius != 4 || cfg.Pool.Mesher != "naive" {
		t.Errorf("pool = %+v", cfg.Pool)
	}
	if cfg.Storage.SnapshotDir != "/tmp/snaps" || cfg.Storage.EditsDB != "" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "pool:\n  radius: 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Seed != DefaultSeed || cfg.Pool.Mesher != "greedy" || cfg.Pool.Radius != 1 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestTextSeed(t *testing.T) {
	cfg, err := Load(writeConfig(t, "world:\n  seed: hello world\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Seed != ParseSeed("hello world") {
		t.Fatalf("text seed = %d, want %d", cfg.World.Seed, ParseSeed("hello world"))
	}
	if ParseSeed("hello world") == ParseSeed("hello World") {
		t.Fatalf("different text seeds hashed to the same value")
	}
	if ParseSeed(" -7 ") != -7 {
		t.Fatalf("numeric seed text not parsed as integer")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
	for name, body := range map[string]string{
		"mesher":  "pool:\n  mesher: marching\n",
		"workers": "pool:\n  workers: -2\n",
		"radius":  "pool:\n  radius: -1\n",
		"level":   "log:\n  level: loud\n",
		"seed":    "world:\n  seed: [1, 2]\n",
	} {
		if _, err := Load(writeConfig(t, body)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: error = %v, want ErrInvalid", name, err)
		}
	}
	if _, err := Load(writeConfig(t, "pool: [")); err == nil {
		t.Fatalf("malformed yaml accepted")
	}
}

func TestClamping(t *testing.T) {
	cfg := Default()
	cfg.SetWorkers(1000)
	if cfg.Pool.Workers != MaxWorkers {
		t.Errorf("workers = %d, want %d", cfg.Pool.Workers, MaxWorkers)
	}
	cfg.SetWorkers(0)
	if cfg.Pool.Workers != MinWorkers {
		t.Errorf("workers = %d, want %d", cfg.Pool.Workers, MinWorkers)
	}
	cfg.SetRadius(99)
	if cfg.Pool.Radius != MaxRadius {
		t.Errorf("radius = %d, want %d", cfg.Pool.Radius, MaxRadius)
	}
}
