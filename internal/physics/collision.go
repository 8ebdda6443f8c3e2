// Package physics answers movement and picking queries against any block
// source that reports solidity. Cell (x, y, z) occupies [x,x+1]x[y,y+1]x[z,z+1].
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HalfWidth is half the horizontal extent of a body.
const HalfWidth = 0.3

// SolidQuery is the world view physics needs. world.ChunkStore implements it.
type SolidQuery interface {
	IsSolid(x, y, z int) bool
}

func floor(f float32) int {
	return int(math.Floor(float64(f)))
}

// Collides checks if a body with feet at pos overlaps any solid block.
func Collides(q SolidQuery, pos mgl32.Vec3, height float32) bool {
	minX, maxX := pos.X()-HalfWidth, pos.X()+HalfWidth
	minY, maxY := pos.Y(), pos.Y()+height
	minZ, maxZ := pos.Z()-HalfWidth, pos.Z()+HalfWidth

	for x := floor(minX); x <= floor(maxX); x++ {
		for y := floor(minY); y <= floor(maxY); y++ {
			for z := floor(minZ); z <= floor(maxZ); z++ {
				if !q.IsSolid(x, y, z) {
					continue
				}
				bx, by, bz := float32(x), float32(y), float32(z)
				if minX < bx+1 && maxX > bx &&
					minY < by+1 && maxY > by &&
					minZ < bz+1 && maxZ > bz {
					return true
				}
			}
		}
	}
	return false
}

// GroundLevel finds the highest solid top under a body's footprint at or
// below fromY. ok is false when the columns are empty.
func GroundLevel(q SolidQuery, x, z float32, fromY int) (y float32, ok bool) {
	best := math.MinInt
	for bx := floor(x - HalfWidth); bx <= floor(x+HalfWidth); bx++ {
		for bz := floor(z - HalfWidth); bz <= floor(z+HalfWidth); bz++ {
			for by := fromY; by >= 0; by-- {
				if q.IsSolid(bx, by, bz) {
					best = max(best, by)
					break
				}
			}
		}
	}
	if best == math.MinInt {
		return 0, false
	}
	return float32(best + 1), true
}
