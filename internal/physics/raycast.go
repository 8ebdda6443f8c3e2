package physics

import (
	"voxelgen/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0

	rayStep = float32(0.02)
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition [3]int
	// AdjacentPosition is the last empty cell sampled before the hit, where a
	// placed block goes. When the ray starts inside a solid cell it is the
	// start cell.
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// Raycast marches from start along direction (expected normalized) and
// reports the first solid cell between minDist and maxDist. Cells before
// minDist are not hit but still count as the adjacent cell.
func Raycast(q SolidQuery, start, direction mgl32.Vec3, minDist, maxDist float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	steps := int(maxDist / rayStep)

	lastEmptyPos := [3]int{floor(start.X()), floor(start.Y()), floor(start.Z())}
	for i := 0; i <= steps; i++ {
		dist := float32(i) * rayStep
		pos := start.Add(direction.Mul(dist))
		cell := [3]int{floor(pos.X()), floor(pos.Y()), floor(pos.Z())}
		solid := q.IsSolid(cell[0], cell[1], cell[2])

		if solid && dist >= minDist {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: lastEmptyPos,
				Distance:         dist,
				Hit:              true,
			}
		}
		if !solid {
			lastEmptyPos = cell
		}
	}
	return RaycastResult{}
}
