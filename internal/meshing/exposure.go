package meshing

import "voxelgen/internal/world"

// IsExposed reports whether the given face of cell (x, y, z) needs geometry:
// true iff the neighbor across that face is air. Cells outside the chunk,
// including those in adjacent chunks, count as air. Water is opaque here, so
// water/air faces are exposed and water/stone faces are not.
func IsExposed(c *world.Chunk, x, y, z int, face world.BlockFace) bool {
	dx, dy, dz := face.Offset()
	return c.GetBlock(x+dx, y+dy, z+dz) == world.BlockTypeAir
}
