// Package edits persists player block edits in SQLite so they can be replayed
// onto freshly generated chunks. One row is kept per cell; a newer edit to the
// same cell replaces the older one.
package edits

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"voxelgen/internal/world"
)

var (
	ErrOutOfRange = errors.New("edits: y outside chunk")
	ErrClosed     = errors.New("edits: store closed")
)

// Edit is a single block change in world coordinates.
type Edit struct {
	X, Y, Z int
	Block   world.BlockType
}

// Store is a SQLite-backed edit log.
type Store struct {
	db     *sql.DB
	log    *slog.Logger
	closed atomic.Bool
}

// Open opens (creating if needed) the edit database at path.
func Open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("edits: empty db path")
	}
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("edits pragmas: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("edits schema: %w", err)
	}
	log.Debug("edit store opened", "path", path)
	return &Store{db: db, log: log}, nil
}

func initPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS block_edits (
			cx INTEGER NOT NULL,
			cz INTEGER NOT NULL,
			lx INTEGER NOT NULL,
			y INTEGER NOT NULL,
			lz INTEGER NOT NULL,
			block TEXT NOT NULL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (cx, cz, lx, y, lz)
		);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Record stores e, replacing any earlier edit of the same cell.
func (s *Store) Record(ctx context.Context, e Edit) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if e.Y < 0 || e.Y >= world.ChunkSizeY {
		return fmt.Errorf("%w: %d", ErrOutOfRange, e.Y)
	}
	if !e.Block.Valid() {
		return fmt.Errorf("edits: invalid block %d", e.Block)
	}
	coord, lx, lz := world.WorldToLocal(e.X, e.Z)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO block_edits (cx, cz, lx, y, lz, block, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (cx, cz, lx, y, lz) DO UPDATE SET
			block = excluded.block,
			updated_at = excluded.updated_at`,
		coord.X, coord.Z, lx, e.Y, lz, e.Block.String(), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("record edit: %w", err)
	}
	return nil
}

// ForChunk returns the latest edit of every edited cell in the chunk, in
// world coordinates, ordered by y, x, z.
func (s *Store) ForChunk(ctx context.Context, coord world.ChunkCoord) ([]Edit, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT lx, y, lz, block FROM block_edits
		WHERE cx = ? AND cz = ?
		ORDER BY y, lx, lz`, coord.X, coord.Z)
	if err != nil {
		return nil, fmt.Errorf("query edits %v: %w", coord, err)
	}
	defer rows.Close()

	var out []Edit
	for rows.Next() {
		var (
			lx, y, lz int
			name      string
		)
		if err := rows.Scan(&lx, &y, &lz, &name); err != nil {
			return nil, fmt.Errorf("scan edit: %w", err)
		}
		b, err := world.ParseBlockType(name)
		if err != nil {
			s.log.Warn("skipping edit with unknown block", "chunk", coord, "block", name)
			continue
		}
		out = append(out, Edit{
			X:     coord.X*world.ChunkSizeX + lx,
			Y:     y,
			Z:     coord.Z*world.ChunkSizeZ + lz,
			Block: b,
		})
	}
	return out, rows.Err()
}

// Apply replays the stored edits for c onto it.
func (s *Store) Apply(ctx context.Context, c *world.Chunk) error {
	list, err := s.ForChunk(ctx, c.Coord())
	if err != nil {
		return err
	}
	for _, e := range list {
		_, lx, lz := world.WorldToLocal(e.X, e.Z)
		c.SetBlock(lx, e.Y, lz, e.Block)
	}
	if len(list) > 0 {
		s.log.Debug("applied edits", "chunk", c.Coord(), "count", len(list))
	}
	return nil
}

// Count returns the number of edited cells.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM block_edits`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
