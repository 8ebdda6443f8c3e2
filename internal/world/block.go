package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeWood
	BlockTypeLeaves
	BlockTypeWater

	numBlockTypes
)

var blockNames = [numBlockTypes]string{
	BlockTypeAir:    "air",
	BlockTypeGrass:  "grass",
	BlockTypeDirt:   "dirt",
	BlockTypeStone:  "stone",
	BlockTypeWood:   "wood",
	BlockTypeLeaves: "leaves",
	BlockTypeWater:  "water",
}

// palette holds the flat RGB color used for every face of a block type.
var palette = [numBlockTypes]mgl32.Vec3{
	BlockTypeAir:    {0, 0, 0},
	BlockTypeGrass:  {0.30, 0.69, 0.31},
	BlockTypeDirt:   {0.55, 0.27, 0.07},
	BlockTypeStone:  {0.50, 0.50, 0.50},
	BlockTypeWood:   {0.40, 0.26, 0.13},
	BlockTypeLeaves: {0.13, 0.55, 0.13},
	BlockTypeWater:  {0.25, 0.41, 0.88},
}

func (b BlockType) String() string {
	if b < numBlockTypes {
		return blockNames[b]
	}
	return fmt.Sprintf("block(%d)", uint8(b))
}

// Valid reports whether b is one of the known block types.
func (b BlockType) Valid() bool {
	return b < numBlockTypes
}

// Color returns the palette entry for the block type. Unknown types render gray.
func (b BlockType) Color() mgl32.Vec3 {
	if b < numBlockTypes {
		return palette[b]
	}
	return mgl32.Vec3{0.5, 0.5, 0.5}
}

// IsSolid reports whether a block occupies its cell for collision purposes.
// Water is rendered but can be walked and swum through.
func IsSolid(b BlockType) bool {
	return b != BlockTypeAir && b != BlockTypeWater
}

// IsRendered reports whether a block produces geometry at all.
func IsRendered(b BlockType) bool {
	return b != BlockTypeAir
}

// ParseBlockType maps a lowercase block name back to its type.
func ParseBlockType(name string) (BlockType, error) {
	for i, n := range blockNames {
		if n == name {
			return BlockType(i), nil
		}
	}
	return BlockTypeAir, fmt.Errorf("unknown block type %q", name)
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceNorth  BlockFace = iota // +Z
	FaceSouth                   // -Z
	FaceEast                    // +X
	FaceWest                    // -X
	FaceTop                     // +Y
	FaceBottom                  // -Y
)

// AllFaces lists every face in the order meshers visit them.
var AllFaces = [6]BlockFace{FaceNorth, FaceSouth, FaceEast, FaceWest, FaceTop, FaceBottom}

var faceOffsets = [6][3]int{
	FaceNorth:  {0, 0, 1},
	FaceSouth:  {0, 0, -1},
	FaceEast:   {1, 0, 0},
	FaceWest:   {-1, 0, 0},
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
}

// Offset returns the unit step towards the neighbor sharing this face.
func (f BlockFace) Offset() (dx, dy, dz int) {
	o := faceOffsets[f]
	return o[0], o[1], o[2]
}

// Normal returns the outward unit normal of the face.
func (f BlockFace) Normal() mgl32.Vec3 {
	o := faceOffsets[f]
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}

func (f BlockFace) String() string {
	switch f {
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceEast:
		return "east"
	case FaceWest:
		return "west"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return fmt.Sprintf("face(%d)", int(f))
	}
}
