package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 64
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkCoord identifies a chunk column on the XZ plane.
type ChunkCoord struct {
	X, Z int
}

// Chunk represents a 16x64x16 column of the world
type Chunk struct {
	X, Z   int
	blocks [ChunkVolume]BlockType
	dirty  bool
}

// NewChunk creates a new all-air chunk at the specified chunk coordinates
func NewChunk(x, z int) *Chunk {
	return &Chunk{
		X:     x,
		Z:     z,
		dirty: true,
	}
}

// Coord returns the chunk's coordinate pair.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Z: c.Z}
}

// InBounds reports whether local coordinates address a cell of the grid.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// index converts local coordinates (x, y, z) → flat index
func index(x, y, z int) int {
	return (x*ChunkSizeY+y)*ChunkSizeZ + z
}

// GetBlock returns the block type at the specified local coordinates.
// Anything outside the grid reads as air.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !InBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[index(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates.
// Writes outside the grid are dropped.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !InBounds(x, y, z) {
		return
	}
	idx := index(x, y, z)
	if c.blocks[idx] != blockType {
		c.blocks[idx] = blockType
		c.dirty = true
	}
}

// IsSolid checks if the block at the specified local coordinates blocks movement
func (c *Chunk) IsSolid(x, y, z int) bool {
	return IsSolid(c.GetBlock(x, y, z))
}

// IsDirty returns whether the chunk has been modified since its last mesh
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.dirty = false
}

// Blocks returns a copy of the raw grid in index order (x-major, then y, then z).
func (c *Chunk) Blocks() []BlockType {
	out := make([]BlockType, ChunkVolume)
	copy(out, c.blocks[:])
	return out
}

// LoadBlocks replaces the grid from raw index-ordered data. Unknown block
// values are stored as air. It returns false if data has the wrong length.
func (c *Chunk) LoadBlocks(data []BlockType) bool {
	if len(data) != ChunkVolume {
		return false
	}
	for i, b := range data {
		if !b.Valid() {
			b = BlockTypeAir
		}
		c.blocks[i] = b
	}
	c.dirty = true
	return true
}

// Count returns the number of cells holding the given block type.
func (c *Chunk) Count(b BlockType) int {
	n := 0
	for _, v := range c.blocks {
		if v == b {
			n++
		}
	}
	return n
}

// SurfaceY returns the y of the topmost solid cell in a column, or -1 if the
// column has none.
func (c *Chunk) SurfaceY(x, z int) int {
	for y := ChunkSizeY - 1; y >= 0; y-- {
		if c.IsSolid(x, y, z) {
			return y
		}
	}
	return -1
}

// WorldOrigin returns the world-space block coordinates of local (0, 0, 0).
func (c *Chunk) WorldOrigin() (x, y, z int) {
	return c.X * ChunkSizeX, 0, c.Z * ChunkSizeZ
}

// WorldToLocal splits a world column into its chunk coordinate and the local
// column inside that chunk. Negative coordinates floor toward -inf.
func WorldToLocal(x, z int) (coord ChunkCoord, lx, lz int) {
	return ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}, mod(x, ChunkSizeX), mod(z, ChunkSizeZ)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
