package meshing

import (
	"voxelgen/internal/profiling"
	"voxelgen/internal/world"
)

// BuildNaive emits one quad per exposed face of every non-air cell. It returns
// nil when the chunk has no exposed faces.
func BuildNaive(c *world.Chunk) *Geometry {
	if c == nil {
		return nil
	}
	defer profiling.Track("meshing.BuildNaive")()

	g := newGeometry(c, 256)
	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				bt := c.GetBlock(x, y, z)
				if !world.IsRendered(bt) {
					continue
				}
				color := bt.Color()
				for _, face := range world.AllFaces {
					if IsExposed(c, x, y, z, face) {
						g.appendFace(face, x, y, z, x+1, y+1, z+1, color)
					}
				}
			}
		}
	}
	return finish(g)
}
