package world

import "testing"

func TestChunkOutOfRangeAccess(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetClean()

	coords := [][3]int{
		{-1, 0, 0}, {ChunkSizeX, 0, 0},
		{0, -1, 0}, {0, ChunkSizeY, 0},
		{0, 0, -1}, {0, 0, ChunkSizeZ},
		{1 << 30, -(1 << 30), 5},
	}
	for _, p := range coords {
		c.SetBlock(p[0], p[1], p[2], BlockTypeStone)
		if b := c.GetBlock(p[0], p[1], p[2]); b != BlockTypeAir {
			t.Errorf("GetBlock(%v) = %v, want air", p, b)
		}
	}
	if c.IsDirty() {
		t.Fatalf("out-of-range writes marked the chunk dirty")
	}
	if n := c.Count(BlockTypeStone); n != 0 {
		t.Fatalf("out-of-range writes landed in the grid: %d stone cells", n)
	}
}

func TestChunkSetGet(t *testing.T) {
	c := NewChunk(2, -1)
	c.SetClean()
	c.SetBlock(15, 63, 15, BlockTypeLeaves)
	if b := c.GetBlock(15, 63, 15); b != BlockTypeLeaves {
		t.Fatalf("got %v, want leaves", b)
	}
	if !c.IsDirty() {
		t.Fatalf("SetBlock should mark chunk dirty")
	}
	c.SetClean()
	c.SetBlock(15, 63, 15, BlockTypeLeaves)
	if c.IsDirty() {
		t.Fatalf("rewriting the same block should not mark chunk dirty")
	}
}

func TestChunkSolidity(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetBlock(1, 1, 1, BlockTypeWater)
	c.SetBlock(2, 1, 1, BlockTypeStone)
	if c.IsSolid(1, 1, 1) {
		t.Errorf("water should not be solid")
	}
	if !c.IsSolid(2, 1, 1) {
		t.Errorf("stone should be solid")
	}
	if c.IsSolid(3, 1, 1) {
		t.Errorf("air should not be solid")
	}
	if got := c.SurfaceY(2, 1); got != 1 {
		t.Errorf("SurfaceY(2,1) = %d, want 1", got)
	}
	if got := c.SurfaceY(1, 1); got != -1 {
		t.Errorf("SurfaceY over water only = %d, want -1", got)
	}
}

func TestBlockTypeHelpers(t *testing.T) {
	for b := BlockTypeAir; b < numBlockTypes; b++ {
		got, err := ParseBlockType(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBlockType(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBlockType("lava"); err == nil {
		t.Errorf("expected error for unknown block name")
	}
	if IsRendered(BlockTypeAir) || !IsRendered(BlockTypeWater) {
		t.Errorf("only air should be unrendered")
	}
	if BlockType(200).Valid() {
		t.Errorf("200 should not be a valid block type")
	}
}

func TestBlockFaceOffsetsMatchNormals(t *testing.T) {
	for _, f := range AllFaces {
		dx, dy, dz := f.Offset()
		n := f.Normal()
		if float32(dx) != n.X() || float32(dy) != n.Y() || float32(dz) != n.Z() {
			t.Errorf("%v: offset (%d,%d,%d) != normal %v", f, dx, dy, dz, n)
		}
		if n.Len() != 1 {
			t.Errorf("%v: normal %v is not unit length", f, n)
		}
	}
}

func TestBlocksRoundTrip(t *testing.T) {
	c := NewGenerator(3).Build(1, 1)
	d := NewChunk(1, 1)
	if !d.LoadBlocks(c.Blocks()) {
		t.Fatalf("LoadBlocks rejected a full grid")
	}
	if hashChunkBlocks(c) != hashChunkBlocks(d) {
		t.Fatalf("grid changed through Blocks/LoadBlocks")
	}
	if d.LoadBlocks(make([]BlockType, 10)) {
		t.Fatalf("LoadBlocks accepted a short grid")
	}
}

func TestFloorDivMod(t *testing.T) {
	cases := []struct{ a, q, m int }{
		{0, 0, 0}, {15, 0, 15}, {16, 1, 0}, {-1, -1, 15}, {-16, -1, 0}, {-17, -2, 15},
	}
	for _, tc := range cases {
		if q := floorDiv(tc.a, 16); q != tc.q {
			t.Errorf("floorDiv(%d,16) = %d, want %d", tc.a, q, tc.q)
		}
		if m := mod(tc.a, 16); m != tc.m {
			t.Errorf("mod(%d,16) = %d, want %d", tc.a, m, tc.m)
		}
		coord, lx, lz := WorldToLocal(tc.a, tc.a)
		if coord != (ChunkCoord{X: tc.q, Z: tc.q}) || lx != tc.m || lz != tc.m {
			t.Errorf("WorldToLocal(%d,%d) = %v,%d,%d", tc.a, tc.a, coord, lx, lz)
		}
	}
}
