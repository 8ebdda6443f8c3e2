package world

import (
	"math/rand"

	"voxelgen/internal/profiling"
)

const (
	WaterLevel = 12

	// DirtDepth is the number of dirt layers between stone and the grass top.
	DirtDepth = 3

	TreeProbability = 0.05
	treeMinHeight   = 10 // exclusive
	treeMaxHeight   = 35 // exclusive
)

// TreeSite records where a tree will be stamped. GroundY is the first cell
// above the column's grass, where the trunk starts.
type TreeSite struct {
	LocalX, GroundY, LocalZ int
}

// TerrainGenerator fills chunks with terrain.
type TerrainGenerator interface {
	HeightAt(worldX, worldZ int) int
	PopulateChunk(c *Chunk) []TreeSite
}

// Generator handles terrain generation logic.
type Generator struct {
	seed     int64
	terrain  *NoiseField
	mountain *NoiseField
}

// NewGenerator creates a generator whose output depends only on seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:     seed,
		terrain:  NewNoiseField(seed),
		mountain: NewNoiseField(seed + 1),
	}
}

// Seed returns the world seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Build allocates and fully populates the chunk at (chunkX, chunkZ).
func (g *Generator) Build(chunkX, chunkZ int) *Chunk {
	return BuildChunk(g, chunkX, chunkZ)
}

// BuildChunk allocates a chunk and populates it with gen.
func BuildChunk(gen TerrainGenerator, chunkX, chunkZ int) *Chunk {
	defer profiling.Track("world.Build")()
	c := NewChunk(chunkX, chunkZ)
	gen.PopulateChunk(c)
	return c
}

// PopulateChunk fills a chunk from the height map, adds water, then stamps
// trees in the order their sites were registered. Trees may overlap; the
// later one wins where they do.
func (g *Generator) PopulateChunk(c *Chunk) []TreeSite {
	hm := g.HeightMap(c.X, c.Z)
	rng := chunkRNG(g.seed, c.X, c.Z)

	var sites []TreeSite
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			h := hm[lx][lz]
			fillColumn(c, lx, lz, h)
			if c.GetBlock(lx, h-1, lz) != BlockTypeGrass {
				continue
			}
			if h > treeMinHeight && h < treeMaxHeight && rng.Float64() < TreeProbability {
				sites = append(sites, TreeSite{LocalX: lx, GroundY: h, LocalZ: lz})
			}
		}
	}

	for _, s := range sites {
		PlaceTree(c, s.LocalX, s.GroundY, s.LocalZ, rng)
	}
	c.dirty = true
	return sites
}

// fillColumn writes the stone/dirt/grass stack for a column of height h and
// floods empty cells up to the water level.
func fillColumn(c *Chunk, x, z, h int) {
	for y := 0; y < h && y < ChunkSizeY; y++ {
		switch {
		case y < h-DirtDepth-1:
			c.SetBlock(x, y, z, BlockTypeStone)
		case y < h-1:
			c.SetBlock(x, y, z, BlockTypeDirt)
		default:
			c.SetBlock(x, y, z, BlockTypeGrass)
		}
	}
	for y := h; y < WaterLevel; y++ {
		if c.GetBlock(x, y, z) == BlockTypeAir {
			c.SetBlock(x, y, z, BlockTypeWater)
		}
	}
}

// FlatGenerator produces the same column everywhere and never plants trees.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator creates a flat generator. Height is clamped to the chunk.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: max(0, min(ChunkSizeY, height))}
}

func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.height
}

func (g *FlatGenerator) PopulateChunk(c *Chunk) []TreeSite {
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			fillColumn(c, lx, lz, g.height)
		}
	}
	c.dirty = true
	return nil
}

// PlaceTree stamps a tree with a random total height of 5 to 7 (trunk two
// shorter) and returns the trunk height used.
func PlaceTree(c *Chunk, x, groundY, z int, rng *rand.Rand) int {
	total := 5 + rng.Intn(3)
	trunk := total - 2
	PlaceTreeWithTrunk(c, x, groundY, z, trunk)
	return trunk
}
