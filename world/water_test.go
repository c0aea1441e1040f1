package world

import (
	"testing"

	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/voxel"
)

func TestSettleWaterAcrossEdge(t *testing.T) {
	b := voxel.Bounds{X: 4, Y: 8, Z: 4}
	floored := func() *voxel.Grid {
		g := voxel.NewGrid(b)
		for x := 0; x < b.X; x++ {
			for z := 0; z < b.Z; z++ {
				g.Set(x, 0, z, block.Stone)
			}
		}
		return g
	}

	g := floored()
	if n := settleWater(g, edges{}, 3); n != 0 {
		t.Fatalf("no water should flow without neighbours, flooded %d", n)
	}

	neighbour := floored()
	neighbour.Set(3, 1, 2, block.Water)
	neighbour.Set(3, 2, 2, block.Water)
	var e edges
	e[block.FaceLeft] = newEdge(neighbour, voxel.NewLight(b), block.FaceRight)

	if n := settleWater(g, e, 3); n != b.X*b.Z*3 {
		t.Fatalf("expected %d cells flooded, got %d", b.X*b.Z*3, n)
	}
	for y := 1; y < b.Y; y++ {
		want := block.Air
		if y <= 3 {
			want = block.Water
		}
		if got := g.At(2, y, 1); got != want {
			t.Fatalf("y=%d: expected %v, got %v", y, block.Name(want), block.Name(got))
		}
	}
	if n := settleWater(g, e, 3); n != 0 {
		t.Fatalf("settled water should stay put, flooded %d", n)
	}
}

func TestSettleWaterStaysEnclosed(t *testing.T) {
	b := voxel.Bounds{X: 4, Y: 8, Z: 4}
	g := voxel.NewGrid(b)
	g.Fill(block.Stone)
	g.Set(1, 2, 1, block.Water)
	g.Set(1, 3, 1, block.Air)
	g.Set(1, 6, 1, block.Air)

	if n := settleWater(g, edges{}, 4); n != 1 {
		t.Fatalf("expected only the air above the water to flood, flooded %d", n)
	}
	if g.At(1, 6, 1) != block.Air {
		t.Fatalf("air above the water level should stay dry")
	}
}
