package meshing

import (
	"voxelgen/internal/profiling"
	"voxelgen/internal/world"
)

const (
	sx = world.ChunkSizeX
	sy = world.ChunkSizeY
	sz = world.ChunkSizeZ

	// maskSize covers the largest slice plane of the chunk.
	maskSize = max(sy*sz, sx*sz, sx*sy)
)

// sweep describes one face direction: slices are taken along the face normal
// and each slice is a su x sv plane. cell maps (slice, u, v) to chunk-local
// coordinates; it is a pure axis permutation, so cell(s+1, u+h, v+w) is the
// far corner of a merged rectangle.
type sweep struct {
	face   world.BlockFace
	slices int
	su, sv int
	cell   func(s, u, v int) (x, y, z int)
}

func planeYZ(s, u, v int) (int, int, int) { return s, u, v } // u=y, v=z
func planeXZ(s, u, v int) (int, int, int) { return u, s, v } // u=x, v=z
func planeXY(s, u, v int) (int, int, int) { return u, v, s } // u=x, v=y

// sweeps fixes the emission order: +X, -X, +Y, -Y, +Z, -Z.
var sweeps = [6]sweep{
	{face: world.FaceEast, slices: sx, su: sy, sv: sz, cell: planeYZ},
	{face: world.FaceWest, slices: sx, su: sy, sv: sz, cell: planeYZ},
	{face: world.FaceTop, slices: sy, su: sx, sv: sz, cell: planeXZ},
	{face: world.FaceBottom, slices: sy, su: sx, sv: sz, cell: planeXZ},
	{face: world.FaceNorth, slices: sz, su: sx, sv: sy, cell: planeXY},
	{face: world.FaceSouth, slices: sz, su: sx, sv: sy, cell: planeXY},
}

// greedyScratch is the per-slice mask. One instance is reused for every slice
// of every sweep of a chunk; each cell holds the block type whose face is
// exposed there, or air.
type greedyScratch struct {
	mask [maskSize]world.BlockType
}

// BuildGreedy merges exposed faces of the same block type into maximal
// rectangles per slice. It returns nil when the chunk has no exposed faces.
// Output is deterministic: sweeps run in a fixed order, masks are scanned
// row-major, and rectangles grow in width before height.
func BuildGreedy(c *world.Chunk) *Geometry {
	if c == nil {
		return nil
	}
	defer profiling.Track("meshing.BuildGreedy")()

	g := newGeometry(c, 64)
	var scratch greedyScratch
	for i := range sweeps {
		buildGreedyForDirection(c, g, &scratch, &sweeps[i])
	}
	return finish(g)
}

// buildGreedyForDirection performs 2D greedy meshing for one face direction.
func buildGreedyForDirection(c *world.Chunk, g *Geometry, scratch *greedyScratch, sw *sweep) {
	su, sv := sw.su, sw.sv
	mask := scratch.mask[:su*sv]

	for s := 0; s < sw.slices; s++ {
		for u := 0; u < su; u++ {
			for v := 0; v < sv; v++ {
				x, y, z := sw.cell(s, u, v)
				bt := c.GetBlock(x, y, z)
				if world.IsRendered(bt) && IsExposed(c, x, y, z, sw.face) {
					mask[u*sv+v] = bt
				} else {
					mask[u*sv+v] = world.BlockTypeAir
				}
			}
		}

		// Greedy merge over mask
		i := 0
		for i < su*sv {
			bt := mask[i]
			if bt == world.BlockTypeAir {
				i++
				continue
			}
			u0 := i / sv
			v0 := i % sv

			// compute width
			width := 1
			for v1 := v0 + 1; v1 < sv && mask[u0*sv+v1] == bt; v1++ {
				width++
			}

			// compute height
			height := 1
		outer:
			for u1 := u0 + 1; u1 < su; u1++ {
				for v1 := v0; v1 < v0+width; v1++ {
					if mask[u1*sv+v1] != bt {
						break outer
					}
				}
				height++
			}

			x0, y0, z0 := sw.cell(s, u0, v0)
			x1, y1, z1 := sw.cell(s+1, u0+height, v0+width)
			g.appendFace(sw.face, x0, y0, z0, x1, y1, z1, bt.Color())

			// zero-out mask region
			for uu := u0; uu < u0+height; uu++ {
				for vv := v0; vv < v0+width; vv++ {
					mask[uu*sv+vv] = world.BlockTypeAir
				}
			}
		}
	}
}
