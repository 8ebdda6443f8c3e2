// Package snapshot stores chunk grids as zstd-compressed files.
//
// A snapshot is a single zstd frame holding a 13-byte header (magic "VXCK",
// format version, chunk X and Z as little-endian int32) followed by one byte
// per cell in the chunk's index order.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"voxelgen/internal/world"

	"github.com/klauspost/compress/zstd"
)

const (
	Version    byte = 1
	headerSize      = 4 + 1 + 4 + 4
	Ext             = ".vxck.zst"
)

var magic = [4]byte{'V', 'X', 'C', 'K'}

var (
	ErrBadMagic = errors.New("snapshot: bad magic")
	ErrVersion  = errors.New("snapshot: unsupported version")
)

// FileName returns the canonical snapshot file name for a chunk coordinate.
func FileName(coord world.ChunkCoord) string {
	return fmt.Sprintf("chunk_%d_%d%s", coord.X, coord.Z, Ext)
}

// Encode writes c to w as one compressed snapshot.
func Encode(w io.Writer, c *world.Chunk) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	var hdr [headerSize]byte
	copy(hdr[:4], magic[:])
	hdr[4] = Version
	binary.LittleEndian.PutUint32(hdr[5:9], uint32(int32(c.X)))
	binary.LittleEndian.PutUint32(hdr[9:13], uint32(int32(c.Z)))

	body := make([]byte, 0, headerSize+world.ChunkVolume)
	body = append(body, hdr[:]...)
	for _, b := range c.Blocks() {
		body = append(body, byte(b))
	}
	if _, err := enc.Write(body); err != nil {
		enc.Close()
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	return nil
}

// Decode reads one snapshot from r. The returned chunk is marked dirty.
func Decode(r io.Reader) (*world.Chunk, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var hdr [headerSize]byte
	if _, err := io.ReadFull(dec, hdr[:]); err != nil {
		return nil, fmt.Errorf("snapshot header: %w", err)
	}
	if [4]byte(hdr[:4]) != magic {
		return nil, ErrBadMagic
	}
	if hdr[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, hdr[4])
	}
	cx := int(int32(binary.LittleEndian.Uint32(hdr[5:9])))
	cz := int(int32(binary.LittleEndian.Uint32(hdr[9:13])))

	raw := make([]byte, world.ChunkVolume)
	if _, err := io.ReadFull(dec, raw); err != nil {
		return nil, fmt.Errorf("snapshot blocks: %w", err)
	}
	blocks := make([]world.BlockType, world.ChunkVolume)
	for i, b := range raw {
		blocks[i] = world.BlockType(b)
	}

	c := world.NewChunk(cx, cz)
	c.LoadBlocks(blocks)
	return c, nil
}

// SaveFile writes c to path, creating parent directories.
func SaveFile(path string, c *world.Chunk) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(f, 64*1024)
	if err := Encode(bw, c); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a snapshot written by SaveFile.
func LoadFile(path string) (*world.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
