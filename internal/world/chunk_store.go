package world

import (
	"sort"
	"sync"
)

// ChunkWithCoord pairs a chunk with its key in the store.
type ChunkWithCoord struct {
	Chunk *Chunk
	Coord ChunkCoord
}

// ChunkStore holds built chunks and gives collaborators (persistence, bots)
// world-coordinate block access. The store never generates terrain itself.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex // guards the map and every stored chunk's blocks
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at the specified chunk coordinates, or nil.
func (cs *ChunkStore) GetChunk(chunkX, chunkZ int) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[ChunkCoord{X: chunkX, Z: chunkZ}]
}

// AddChunk stores a built chunk, replacing any previous chunk at its coordinate.
func (cs *ChunkStore) AddChunk(chunk *Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.chunks[chunk.Coord()] = chunk
}

// HasChunk checks if a chunk exists.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// Get returns the block type at the specified world coordinates. Unloaded
// chunks and out-of-range heights read as air.
func (cs *ChunkStore) Get(x, y, z int) BlockType {
	coord, lx, lz := WorldToLocal(x, z)
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	chunk := cs.chunks[coord]
	if chunk == nil {
		return BlockTypeAir
	}
	return chunk.GetBlock(lx, y, lz)
}

// IsSolid checks if the block at the specified world coordinates blocks movement.
func (cs *ChunkStore) IsSolid(x, y, z int) bool {
	return IsSolid(cs.Get(x, y, z))
}

// Set sets the block type at the specified world coordinates. It reports
// false when the target chunk is not loaded or y is outside the chunk.
// Only the owning chunk is marked dirty: chunks are meshed independently.
func (cs *ChunkStore) Set(x, y, z int, val BlockType) bool {
	if y < 0 || y >= ChunkSizeY {
		return false
	}
	coord, lx, lz := WorldToLocal(x, z)
	cs.mu.Lock()
	defer cs.mu.Unlock()
	chunk := cs.chunks[coord]
	if chunk == nil {
		return false
	}
	chunk.SetBlock(lx, y, lz, val)
	return true
}

// GetAllChunks returns all chunks sorted by coordinate (X, then Z).
func (cs *ChunkStore) GetAllChunks() []ChunkWithCoord {
	cs.mu.RLock()
	chunks := make([]ChunkWithCoord, 0, len(cs.chunks))
	for coord, chunk := range cs.chunks {
		chunks = append(chunks, ChunkWithCoord{Chunk: chunk, Coord: coord})
	}
	cs.mu.RUnlock()
	sortChunks(chunks)
	return chunks
}

// DirtyChunks returns the chunks that changed since they were last marked clean.
func (cs *ChunkStore) DirtyChunks() []ChunkWithCoord {
	cs.mu.RLock()
	var chunks []ChunkWithCoord
	for coord, chunk := range cs.chunks {
		if chunk.IsDirty() {
			chunks = append(chunks, ChunkWithCoord{Chunk: chunk, Coord: coord})
		}
	}
	cs.mu.RUnlock()
	sortChunks(chunks)
	return chunks
}

func sortChunks(chunks []ChunkWithCoord) {
	sort.Slice(chunks, func(i, j int) bool {
		if chunks[i].Coord.X != chunks[j].Coord.X {
			return chunks[i].Coord.X < chunks[j].Coord.X
		}
		return chunks[i].Coord.Z < chunks[j].Coord.Z
	})
}
