package meshing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"voxelgen/internal/world"

	"github.com/alitto/pond/v2"
)

// ErrPoolClosed is returned by Run after Shutdown.
var ErrPoolClosed = errors.New("meshing: worker pool is shut down")

// EditApplier replays persisted block edits onto a freshly generated chunk.
type EditApplier interface {
	Apply(ctx context.Context, c *world.Chunk) error
}

// MeshResult contains the result of a generate+mesh task
type MeshResult struct {
	Coord    world.ChunkCoord
	Chunk    *world.Chunk
	Geometry *Geometry // nil when the chunk has no exposed faces
	Err      error
}

// PoolOption configures a WorkerPool.
type PoolOption func(*WorkerPool)

// WithEdits replays edits from a onto each chunk before meshing.
func WithEdits(a EditApplier) PoolOption {
	return func(p *WorkerPool) { p.edits = a }
}

// WithStore adds every finished chunk to store.
func WithStore(store *world.ChunkStore) PoolOption {
	return func(p *WorkerPool) { p.store = store }
}

// WithLogger sets the pool logger.
func WithLogger(log *slog.Logger) PoolOption {
	return func(p *WorkerPool) {
		if log != nil {
			p.log = log
		}
	}
}

// WorkerPool generates and meshes chunks in parallel. Each task owns its
// chunk and geometry buffers, so tasks share nothing but the read-only
// generator.
type WorkerPool struct {
	pool    pond.Pool
	workers int
	gen     world.TerrainGenerator
	build   Builder
	edits   EditApplier
	store   *world.ChunkStore
	log     *slog.Logger
	closed  atomic.Bool
}

// NewWorkerPool creates a pool of the given size. workers is clamped to at
// least 1; a nil builder selects the greedy mesher.
func NewWorkerPool(workers int, gen world.TerrainGenerator, build Builder, opts ...PoolOption) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if build == nil {
		build = BuildGreedy
	}
	p := &WorkerPool{
		pool:    pond.NewPool(workers),
		workers: workers,
		gen:     gen,
		build:   build,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers returns the concurrency limit.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Run generates, patches and meshes every coordinate. Results come back in
// input order. Cancelling ctx stops tasks that have not started yet; their
// results carry the context error, and Run returns it as well.
func (p *WorkerPool) Run(ctx context.Context, coords []world.ChunkCoord) ([]MeshResult, error) {
	if p.closed.Load() {
		return nil, ErrPoolClosed
	}
	start := time.Now()
	results := make([]MeshResult, len(coords))
	tasks := make([]pond.Task, 0, len(coords))
	for i, coord := range coords {
		tasks = append(tasks, p.pool.Submit(func() {
			results[i] = p.process(ctx, coord)
		}))
	}
	for i, task := range tasks {
		if err := task.Wait(); err != nil && results[i].Err == nil {
			results[i] = MeshResult{Coord: coords[i], Err: fmt.Errorf("mesh task %v: %w", coords[i], err)}
		}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.log.Debug("mesh run finished",
		"chunks", len(coords),
		"failed", failed,
		"elapsed", time.Since(start),
		"completed_total", p.pool.CompletedTasks())

	return results, ctx.Err()
}

func (p *WorkerPool) process(ctx context.Context, coord world.ChunkCoord) MeshResult {
	if err := ctx.Err(); err != nil {
		return MeshResult{Coord: coord, Err: err}
	}

	c := world.BuildChunk(p.gen, coord.X, coord.Z)
	if p.edits != nil {
		if err := p.edits.Apply(ctx, c); err != nil {
			p.log.Warn("applying edits failed", "chunk", coord, "error", err)
			return MeshResult{Coord: coord, Chunk: c, Err: fmt.Errorf("apply edits %v: %w", coord, err)}
		}
	}

	geom := p.build(c)
	c.SetClean()
	if p.store != nil {
		p.store.AddChunk(c)
	}
	return MeshResult{Coord: coord, Chunk: c, Geometry: geom}
}

// Shutdown waits for running tasks and stops the pool.
func (p *WorkerPool) Shutdown() {
	if p.closed.Swap(true) {
		return
	}
	p.pool.StopAndWait()
}
