package world

import (
	"sync"
	"testing"
)

func TestChunkStoreWorldAccess(t *testing.T) {
	cs := NewChunkStore()
	cs.AddChunk(NewChunk(-1, 0))
	cs.AddChunk(NewChunk(0, 0))

	if !cs.Set(-1, 5, 3, BlockTypeStone) {
		t.Fatalf("Set into loaded chunk reported failure")
	}
	if b := cs.GetChunk(-1, 0).GetBlock(15, 5, 3); b != BlockTypeStone {
		t.Fatalf("world x=-1 should land at local x=15, got %v", b)
	}
	if !cs.IsSolid(-1, 5, 3) {
		t.Fatalf("IsSolid(-1,5,3) = false")
	}
	if cs.Set(40, 5, 3, BlockTypeStone) {
		t.Fatalf("Set into unloaded chunk reported success")
	}
	if cs.Set(0, ChunkSizeY, 0, BlockTypeStone) {
		t.Fatalf("Set above the chunk reported success")
	}
	if b := cs.Get(40, 5, 3); b != BlockTypeAir {
		t.Fatalf("unloaded chunk read %v, want air", b)
	}
}

func TestChunkStoreDirtyChunks(t *testing.T) {
	cs := NewChunkStore()
	for x := 0; x < 3; x++ {
		c := NewChunk(x, 0)
		c.SetClean()
		cs.AddChunk(c)
	}
	cs.Set(2*ChunkSizeX+1, 10, 1, BlockTypeWood)
	cs.Set(0, 10, 1, BlockTypeWood)

	dirty := cs.DirtyChunks()
	if len(dirty) != 2 {
		t.Fatalf("got %d dirty chunks, want 2", len(dirty))
	}
	if dirty[0].Coord != (ChunkCoord{0, 0}) || dirty[1].Coord != (ChunkCoord{2, 0}) {
		t.Fatalf("dirty chunks not sorted: %+v", dirty)
	}
}

func TestChunkStoreConcurrentAdd(t *testing.T) {
	cs := NewChunkStore()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cs.AddChunk(NewChunk(i, -i))
		}(i)
	}
	wg.Wait()
	if cs.Len() != 32 {
		t.Fatalf("Len=%d, want 32", cs.Len())
	}
	all := cs.GetAllChunks()
	for i := 1; i < len(all); i++ {
		if all[i-1].Coord.X >= all[i].Coord.X {
			t.Fatalf("GetAllChunks not sorted at %d", i)
		}
	}
	if !cs.HasChunk(ChunkCoord{X: 5, Z: -5}) {
		t.Fatalf("HasChunk missed a stored chunk")
	}
}

func TestChunkStoreConcurrentSetAndRead(t *testing.T) {
	cs := NewChunkStore()
	c := NewChunk(0, 0)
	c.SetClean()
	cs.AddChunk(c)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			b := BlockTypeStone
			if i%2 == 1 {
				b = BlockTypeAir
			}
			cs.Set(1, 1, 1, b)
		}
		cs.Set(1, 1, 1, BlockTypeDirt)
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = cs.IsSolid(1, 1, 1)
			_ = cs.Get(1, 1, 1)
		}
	}()
	wg.Wait()

	if cs.Get(1, 1, 1) != BlockTypeDirt {
		t.Fatalf("last write lost: got %v", cs.Get(1, 1, 1))
	}
	if len(cs.DirtyChunks()) != 1 {
		t.Fatalf("edited chunk not reported dirty")
	}
}
