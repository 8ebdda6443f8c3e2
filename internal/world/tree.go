package world

const (
	canopyRadius = 1
	canopyLayers = 3
)

// PlaceTreeWithTrunk writes a wood trunk of trunkHeight cells starting at
// groundY, a 3x3x3 leaf canopy on top of it and a single leaf cap above the
// canopy. The centre of the lowest canopy layer is left untouched so the
// canopy never overwrites the trunk line. Every write is clipped to the chunk,
// so trees at a wall are cut off rather than spilling into a neighbor.
func PlaceTreeWithTrunk(c *Chunk, x, groundY, z, trunkHeight int) {
	if trunkHeight < 0 {
		trunkHeight = 0
	}
	for y := groundY; y < groundY+trunkHeight; y++ {
		c.SetBlock(x, y, z, BlockTypeWood)
	}

	canopyBase := groundY + trunkHeight
	for dy := range canopyLayers {
		for dx := -canopyRadius; dx <= canopyRadius; dx++ {
			for dz := -canopyRadius; dz <= canopyRadius; dz++ {
				if dy == 0 && dx == 0 && dz == 0 {
					continue
				}
				c.SetBlock(x+dx, canopyBase+dy, z+dz, BlockTypeLeaves)
			}
		}
	}

	c.SetBlock(x, canopyBase+canopyLayers, z, BlockTypeLeaves)
}
