package world

import "math"

const (
	MinHeight = 5
	MaxHeight = 50

	// Octaves is the number of fBm passes summed for the base terrain.
	Octaves = 6

	TerrainFrequency  = 1.0 / 96.0
	MountainFrequency = 1.0 / 256.0
	MountainExponent  = 2.5

	terrainWeight  = 0.4
	mountainWeight = 0.6
)

// HeightMap holds one terrain height per column of a chunk, indexed [x][z].
type HeightMap [ChunkSizeX][ChunkSizeZ]int

// HeightAt computes the terrain height (number of filled cells) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX)
	z := float64(worldZ)

	amplitude := 1.0
	frequency := TerrainFrequency
	sum := 0.0
	norm := 0.0
	for range Octaves {
		sum += g.terrain.SampleScaled(x, z, frequency, amplitude)
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	terrain := (sum/norm + 1) / 2

	mountain := (g.mountain.SampleScaled(x, z, MountainFrequency, 1) + 1) / 2
	mountain = math.Pow(mountain, MountainExponent)

	v := terrain*terrainWeight + mountain*mountainWeight
	v = math.Max(0, math.Min(1, v))

	h := int(math.Floor(MinHeight + v*(MaxHeight-MinHeight)))
	// v == 1 lands exactly on MaxHeight; the clamp only guards float drift.
	return max(MinHeight, min(MaxHeight, h))
}

// HeightMap computes the heights of every column in a chunk.
func (g *Generator) HeightMap(chunkX, chunkZ int) HeightMap {
	var hm HeightMap
	baseX := chunkX * ChunkSizeX
	baseZ := chunkZ * ChunkSizeZ
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			hm[lx][lz] = g.HeightAt(baseX+lx, baseZ+lz)
		}
	}
	return hm
}
