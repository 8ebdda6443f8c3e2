package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"voxelgen/internal/config"
	"voxelgen/internal/meshing"
	"voxelgen/internal/persistence/edits"
	"voxelgen/internal/persistence/snapshot"
	"voxelgen/internal/physics"
	"voxelgen/internal/profiling"
	"voxelgen/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		seed       = flag.String("seed", "", "world seed (integer or any text)")
		radius     = flag.Int("radius", 0, "generate chunks within this many chunks of the origin")
		mesher     = flag.String("mesher", "", "mesher to use: naive or greedy")
		workers    = flag.Int("workers", 0, "number of parallel workers")
		snapshots  = flag.String("snapshots", "", "directory to write chunk snapshots to")
		editsDB    = flag.String("edits", "", "SQLite database of block edits to replay")
		logLevel   = flag.String("log-level", "", "log level: debug, info, warn, error")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}

	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.World.Seed = config.ParseSeed(*seed)
		case "radius":
			cfg.Pool.Radius = *radius
		case "mesher":
			cfg.Pool.Mesher = *mesher
		case "workers":
			cfg.Pool.Workers = *workers
		case "snapshots":
			cfg.Storage.SnapshotDir = *snapshots
		case "edits":
			cfg.Storage.EditsDB = *editsDB
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := newLogger(cfg.Log.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("voxelgen failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// summary aggregates a run.
type summary struct {
	Chunks    int
	Failed    int
	Quads     int
	Vertices  int
	Triangles int
	Snapshots int
	SpawnY    float32 // ground height at the centre of chunk (0, 0)
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	_, err := generate(ctx, cfg, log)
	return err
}

func generate(ctx context.Context, cfg config.Config, log *slog.Logger) (summary, error) {
	var sum summary

	kind, err := meshing.ParseKind(cfg.Pool.Mesher)
	if err != nil {
		return sum, err
	}
	gen := world.NewGenerator(cfg.World.Seed.Int64())
	store := world.NewChunkStore()

	opts := []meshing.PoolOption{meshing.WithStore(store), meshing.WithLogger(log)}
	if cfg.Storage.EditsDB != "" {
		es, err := edits.Open(ctx, cfg.Storage.EditsDB, log)
		if err != nil {
			return sum, fmt.Errorf("open edits: %w", err)
		}
		defer es.Close()
		opts = append(opts, meshing.WithEdits(es))
	}

	pool := meshing.NewWorkerPool(cfg.Pool.Workers, gen, kind.Builder(), opts...)
	defer pool.Shutdown()

	coords := squareAround(cfg.Pool.Radius)
	log.Info("generating",
		"seed", cfg.World.Seed.Int64(),
		"chunks", len(coords),
		"mesher", kind,
		"workers", pool.Workers())

	start := time.Now()
	results, err := pool.Run(ctx, coords)
	if err != nil {
		return sum, err
	}

	for _, r := range results {
		sum.Chunks++
		if r.Err != nil {
			sum.Failed++
			log.Warn("chunk failed", "chunk", r.Coord, "error", r.Err)
			continue
		}
		sum.Quads += r.Geometry.QuadCount()
		sum.Vertices += r.Geometry.VertexCount()
		sum.Triangles += r.Geometry.TriangleCount()
	}

	// Only chunks that meshed successfully reach the store.
	if cfg.Storage.SnapshotDir != "" {
		for _, cc := range store.GetAllChunks() {
			path := filepath.Join(cfg.Storage.SnapshotDir, snapshot.FileName(cc.Coord))
			if err := snapshot.SaveFile(path, cc.Chunk); err != nil {
				return sum, fmt.Errorf("save snapshot %v: %w", cc.Coord, err)
			}
			sum.Snapshots++
		}
	}

	spawnX, spawnZ := float32(world.ChunkSizeX)/2, float32(world.ChunkSizeZ)/2
	if y, ok := physics.GroundLevel(store, spawnX, spawnZ, world.ChunkSizeY-1); ok {
		sum.SpawnY = y
	}

	log.Info("done",
		"chunks", sum.Chunks,
		"failed", sum.Failed,
		"stored", store.Len(),
		"quads", sum.Quads,
		"vertices", sum.Vertices,
		"triangles", sum.Triangles,
		"snapshots", sum.Snapshots,
		"spawn_y", sum.SpawnY,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"profile", profiling.TopN(5))

	if sum.Failed > 0 {
		return sum, errors.New("some chunks failed")
	}
	return sum, nil
}

// squareAround lists the (2r+1)^2 chunk coordinates centred on the origin,
// x-major.
func squareAround(r int) []world.ChunkCoord {
	coords := make([]world.ChunkCoord, 0, (2*r+1)*(2*r+1))
	for x := -r; x <= r; x++ {
		for z := -r; z <= r; z++ {
			coords = append(coords, world.ChunkCoord{X: x, Z: z})
		}
	}
	return coords
}
