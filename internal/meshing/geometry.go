package meshing

import (
	"voxelgen/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// VertexStride is number of float32 per vertex in each attribute array
	VertexStride = 3

	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// Geometry is the renderable output of a mesher. Positions are chunk-local;
// Origin is the world offset of the chunk. Indices reference vertices and
// describe counter-clockwise triangles seen from outside the surface.
type Geometry struct {
	Origin    mgl32.Vec3
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
}

func newGeometry(c *world.Chunk, quadHint int) *Geometry {
	ox, oy, oz := c.WorldOrigin()
	return &Geometry{
		Origin:    mgl32.Vec3{float32(ox), float32(oy), float32(oz)},
		Positions: make([]float32, 0, quadHint*verticesPerQuad*VertexStride),
		Normals:   make([]float32, 0, quadHint*verticesPerQuad*VertexStride),
		Colors:    make([]float32, 0, quadHint*verticesPerQuad*VertexStride),
		Indices:   make([]uint32, 0, quadHint*indicesPerQuad),
	}
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	if g == nil {
		return 0
	}
	return len(g.Positions) / VertexStride
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// QuadCount returns the number of emitted quads.
func (g *Geometry) QuadCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / indicesPerQuad
}

// Empty reports whether the geometry holds no faces.
func (g *Geometry) Empty() bool {
	return g.QuadCount() == 0
}

// Quad returns the four corners and normal of the i-th quad.
func (g *Geometry) Quad(i int) (corners [4]mgl32.Vec3, normal mgl32.Vec3) {
	base := i * verticesPerQuad * VertexStride
	for k := range corners {
		o := base + k*VertexStride
		corners[k] = mgl32.Vec3{g.Positions[o], g.Positions[o+1], g.Positions[o+2]}
	}
	normal = mgl32.Vec3{g.Normals[base], g.Normals[base+1], g.Normals[base+2]}
	return corners, normal
}

// QuadColor returns the flat color of the i-th quad.
func (g *Geometry) QuadColor(i int) mgl32.Vec3 {
	o := i * verticesPerQuad * VertexStride
	return mgl32.Vec3{g.Colors[o], g.Colors[o+1], g.Colors[o+2]}
}

// appendFace emits the quad lying on the given face of the box
// [x0,x1]x[y0,y1]x[z0,z1]. Corners are ordered so that (v0,v1,v2) and
// (v2,v3,v0) wind counter-clockwise around the outward normal.
func (g *Geometry) appendFace(face world.BlockFace, x0, y0, z0, x1, y1, z1 int, color mgl32.Vec3) {
	fx0, fy0, fz0 := float32(x0), float32(y0), float32(z0)
	fx1, fy1, fz1 := float32(x1), float32(y1), float32(z1)

	var v [4]mgl32.Vec3
	switch face {
	case world.FaceEast: // +X
		v = [4]mgl32.Vec3{{fx1, fy0, fz1}, {fx1, fy0, fz0}, {fx1, fy1, fz0}, {fx1, fy1, fz1}}
	case world.FaceWest: // -X
		v = [4]mgl32.Vec3{{fx0, fy0, fz0}, {fx0, fy0, fz1}, {fx0, fy1, fz1}, {fx0, fy1, fz0}}
	case world.FaceTop: // +Y
		v = [4]mgl32.Vec3{{fx0, fy1, fz1}, {fx1, fy1, fz1}, {fx1, fy1, fz0}, {fx0, fy1, fz0}}
	case world.FaceBottom: // -Y
		v = [4]mgl32.Vec3{{fx0, fy0, fz0}, {fx1, fy0, fz0}, {fx1, fy0, fz1}, {fx0, fy0, fz1}}
	case world.FaceNorth: // +Z
		v = [4]mgl32.Vec3{{fx0, fy0, fz1}, {fx1, fy0, fz1}, {fx1, fy1, fz1}, {fx0, fy1, fz1}}
	case world.FaceSouth: // -Z
		v = [4]mgl32.Vec3{{fx1, fy0, fz0}, {fx0, fy0, fz0}, {fx0, fy1, fz0}, {fx1, fy1, fz0}}
	default:
		return
	}

	n := face.Normal()
	base := uint32(len(g.Positions) / VertexStride)
	for _, p := range v {
		g.Positions = append(g.Positions, p[0], p[1], p[2])
		g.Normals = append(g.Normals, n[0], n[1], n[2])
		g.Colors = append(g.Colors, color[0], color[1], color[2])
	}
	g.Indices = append(g.Indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
}

// finish turns an empty buffer into the "no geometry" result.
func finish(g *Geometry) *Geometry {
	if g.Empty() {
		return nil
	}
	return g
}
