package world

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/world/block"
)

func TestRaycastHitsSurface(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	c := w.Chunk(ChunkPos{})
	top := -1
	for y := w.Dimension().Bounds.Y - 1; y >= 0; y-- {
		if c.Solid(cube.Pos{4, y, 4}) {
			top = y
			break
		}
	}
	if top < 0 {
		t.Fatalf("column should not be empty")
	}

	origin := w.Dimension().CellCentre(cube.Pos{4, top + 5, 4})
	res, ok := w.Raycast(origin, mgl32.Vec3{0, -1, 0}, 10)
	if !ok {
		t.Fatalf("ray should hit the surface")
	}
	if res.Chunk != c || res.Pos != (cube.Pos{4, top, 4}) {
		t.Fatalf("expected hit at %v in chunk (0, 0), got %v in chunk %v", cube.Pos{4, top, 4}, res.Pos, res.Chunk.Pos())
	}
	if res.Normal != (mgl32.Vec3{0, 1, 0}) || res.Face != block.FaceTop {
		t.Fatalf("expected the top face to be hit, got normal %v face %v", res.Normal, res.Face)
	}

	if _, ok := w.Raycast(origin, mgl32.Vec3{0, 1, 0}, 10); ok {
		t.Fatalf("ray pointing at the sky should not hit")
	}
	if _, ok := w.Raycast(origin, mgl32.Vec3{0, -1, 0}, 4); ok {
		t.Fatalf("ray shorter than the gap should not hit")
	}
}

func TestRaycastCrossesChunks(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	right := w.Chunk(ChunkPos{1, 0})
	w.Apply(right, SetBlockTransaction{BlockPos: cube.Pos{1, 120, 8}, Block: block.Cobblestone})

	origin := w.Dimension().CellCentre(cube.Pos{12, 120, 8})
	res, ok := w.Raycast(origin, mgl32.Vec3{1, 0, 0}, 10)
	if !ok {
		t.Fatalf("ray should hit the voxel in the neighbouring chunk")
	}
	if res.Chunk != right || res.Pos != (cube.Pos{1, 120, 8}) {
		t.Fatalf("unexpected hit %v in chunk %v", res.Pos, res.Chunk.Pos())
	}
	if res.Face != block.FaceLeft {
		t.Fatalf("expected the left face to be hit, got %v", res.Face)
	}
}

func TestResolve(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	c, local, ok := w.Resolve(ChunkPos{}, cube.Pos{16, 10, 3})
	if !ok || c.Pos() != (ChunkPos{1, 0}) || local != (cube.Pos{0, 10, 3}) {
		t.Fatalf("expected (0, 10, 3) in chunk (1, 0), got %v ok=%v", local, ok)
	}
	c, local, ok = w.Resolve(ChunkPos{}, cube.Pos{2, 10, -1})
	if !ok || c.Pos() != (ChunkPos{0, -1}) || local != (cube.Pos{2, 10, 15}) {
		t.Fatalf("expected (2, 10, 15) in chunk (0, -1), got %v ok=%v", local, ok)
	}
	if _, _, ok := w.Resolve(ChunkPos{}, cube.Pos{2, -1, 2}); ok {
		t.Fatalf("positions below the chunk should not resolve")
	}
	if _, _, ok := w.Resolve(ChunkPos{}, cube.Pos{2, 128, 2}); ok {
		t.Fatalf("positions above the chunk should not resolve")
	}
	if _, _, ok := w.Resolve(ChunkPos{1, 0}, cube.Pos{16, 10, 0}); ok {
		t.Fatalf("positions in unloaded chunks should not resolve")
	}
}

func TestLocatePoint(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	c, local, ok := w.Locate(mgl32.Vec3{-0.6, 20.2, 3})
	if !ok || c.Pos() != (ChunkPos{-1, 0}) || local != (cube.Pos{15, 20, 3}) {
		t.Fatalf("expected (15, 20, 3) in chunk (-1, 0), got %v ok=%v", local, ok)
	}
	if _, _, ok := w.Locate(mgl32.Vec3{-0.6, 20.2, 17.4}); ok {
		t.Fatalf("corner chunks outside the radius should not be loaded")
	}
	c, local, ok = w.Locate(mgl32.Vec3{15.6, 20.2, 0})
	if !ok || c.Pos() != (ChunkPos{1, 0}) || local != (cube.Pos{0, 20, 0}) {
		t.Fatalf("expected (0, 20, 0) in chunk (1, 0), got %v ok=%v", local, ok)
	}
	box := c.BBox()
	if box.Min() != (mgl32.Vec3{15.5, -0.5, -0.5}) || box.Max() != (mgl32.Vec3{31.5, 127.5, 15.5}) {
		t.Fatalf("unexpected chunk box %v %v", box.Min(), box.Max())
	}
	if _, _, ok := w.Locate(mgl32.Vec3{0, -3, 0}); ok {
		t.Fatalf("points below the world should not be located")
	}
}
