package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid config")

const (
	MinWorkers = 1
	MaxWorkers = 64

	MaxRadius = 32
)

// Config is the top-level voxelgen configuration.
type Config struct {
	World   WorldGenConfig `yaml:"world"`
	Pool    PoolConfig     `yaml:"pool"`
	Storage StorageConfig  `yaml:"storage"`
	Log     LogConfig      `yaml:"log"`
}

// PoolConfig controls the parallel generate+mesh run.
type PoolConfig struct {
	Workers int    `yaml:"workers"`
	Radius  int    `yaml:"radius"` // in chunks around the origin
	Mesher  string `yaml:"mesher"`
}

// StorageConfig names optional on-disk outputs. Empty paths disable them.
type StorageConfig struct {
	SnapshotDir string `yaml:"snapshot_dir"`
	EditsDB     string `yaml:"edits_db"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		World: WorldGenConfig{Seed: DefaultSeed},
		Pool: PoolConfig{
			Workers: clampWorkers(runtime.NumCPU()),
			Radius:  2,
			Mesher:  "greedy",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate fills blanks with defaults and rejects values that cannot be
// clamped into range.
func (c *Config) Validate() error {
	if c.Pool.Workers == 0 {
		c.Pool.Workers = clampWorkers(runtime.NumCPU())
	}
	if c.Pool.Workers < 0 {
		return fmt.Errorf("pool.workers %d: %w", c.Pool.Workers, ErrInvalid)
	}
	c.SetWorkers(c.Pool.Workers)

	if c.Pool.Radius < 0 {
		return fmt.Errorf("pool.radius %d: %w", c.Pool.Radius, ErrInvalid)
	}
	c.SetRadius(c.Pool.Radius)

	switch m := strings.ToLower(c.Pool.Mesher); m {
	case "":
		c.Pool.Mesher = "greedy"
	case "naive", "greedy":
		c.Pool.Mesher = m
	default:
		return fmt.Errorf("pool.mesher %q: %w", c.Pool.Mesher, ErrInvalid)
	}

	switch l := strings.ToLower(c.Log.Level); l {
	case "":
		c.Log.Level = "info"
	case "debug", "info", "warn", "error":
		c.Log.Level = l
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}

// SetWorkers sets the worker count, clamped to [MinWorkers, MaxWorkers].
func (c *Config) SetWorkers(n int) {
	c.Pool.Workers = clampWorkers(n)
}

// SetRadius sets the generation radius in chunks, clamped to [0, MaxRadius].
func (c *Config) SetRadius(r int) {
	// Clamp to reasonable values
	if r < 0 {
		r = 0
	}
	if r > MaxRadius {
		r = MaxRadius
	}
	c.Pool.Radius = r
}

func clampWorkers(n int) int {
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
