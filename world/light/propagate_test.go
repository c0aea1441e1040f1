package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/gen"
	"github.com/oomph-ac/voxel/world/voxel"
)

func TestColumn(t *testing.T) {
	// Indexed bottom up.
	ids := []block.ID{block.Stone, block.Stone, block.Air, block.Stone, block.Water, block.OakLeaves, block.Air, block.Air}
	out := make([]uint8, len(ids))
	Column(ids, out, 15)

	want := []uint8{12, 13, 14, 14, 15, 15, 15, 15}
	for y := range want {
		if out[y] != want[y] {
			t.Fatalf("y=%d: got %d, want %d (all %v)", y, out[y], want[y], out)
		}
	}
}

func TestColumnFloorsAtZero(t *testing.T) {
	ids := make([]block.ID, 40)
	for i := range ids {
		ids[i] = block.Stone
	}
	out := make([]uint8, len(ids))
	Column(ids, out, 15)
	if out[0] != 0 {
		t.Fatalf("deep stone should be fully dark, got %d", out[0])
	}
	if out[len(out)-1] != 15 {
		t.Fatalf("top cell should see the sky, got %d", out[len(out)-1])
	}
}

func TestPropagateGeneratedChunk(t *testing.T) {
	b := voxel.DefaultBounds
	g := gen.New(gen.DefaultConfig()).Generate(mgl32.Vec3{48, 0, 16}, b, 1)
	l := voxel.NewLight(b)
	Propagate(g, l, voxel.MaxSkyLight)

	for x := 0; x < b.X; x++ {
		for z := 0; z < b.Z; z++ {
			ids, values := g.Column(x, z), l.Column(x, z)
			exposed := true
			prev := uint8(voxel.MaxSkyLight)
			for y := b.Y - 1; y >= 0; y-- {
				if exposed {
					if values[y] != voxel.MaxSkyLight {
						t.Fatalf("exposed cell %d,%d,%d has light %d", x, y, z, values[y])
					}
					exposed = ids[y] == block.Air
					continue
				}
				if values[y] > prev {
					t.Fatalf("light increases going down at %d,%d,%d: %d > %d", x, y, z, values[y], prev)
				}
				prev = values[y]
			}
		}
	}
}
