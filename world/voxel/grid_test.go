package voxel

import (
	"testing"

	"github.com/oomph-ac/voxel/oerror"
	"github.com/oomph-ac/voxel/world/block"
)

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("%s: expected panic", name)
		}
		if _, ok := v.(*oerror.VoxelError); !ok {
			t.Fatalf("%s: expected *oerror.VoxelError, got %T (%v)", name, v, v)
		}
	}()
	f()
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid(DefaultBounds)
	g.Set(3, 100, 7, block.Stone)
	if g.At(3, 100, 7) != block.Stone {
		t.Fatalf("expected stone at set position")
	}
	if g.At(3, 99, 7) != block.Air {
		t.Fatalf("neighbouring cell should still be air")
	}
	if col := g.Column(3, 7); col[100] != block.Stone || len(col) != DefaultBounds.Y {
		t.Fatalf("column view does not reflect the grid")
	}
	if g.Count(block.Stone) != 1 {
		t.Fatalf("expected exactly one stone cell")
	}
}

func TestGridBoundsPanic(t *testing.T) {
	g := NewGrid(Bounds{X: 4, Y: 4, Z: 4})
	expectPanic(t, "negative x", func() { g.At(-1, 0, 0) })
	expectPanic(t, "y past top", func() { g.At(0, 4, 0) })
	expectPanic(t, "z past edge", func() { g.Set(0, 0, 4, block.Stone) })

	l := NewLight(Bounds{X: 4, Y: 4, Z: 4})
	expectPanic(t, "light x", func() { l.Set(4, 0, 0, 1) })
}

func TestGridCloneEqual(t *testing.T) {
	g := NewGrid(Bounds{X: 2, Y: 8, Z: 2})
	g.Set(1, 2, 1, block.Dirt)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatalf("clone should equal the original")
	}
	c.Set(0, 0, 0, block.Sand)
	if c.Equal(g) || g.At(0, 0, 0) != block.Air {
		t.Fatalf("clone should not share cells with the original")
	}
	g.CopyFrom(c)
	if !g.Equal(c) {
		t.Fatalf("CopyFrom should make grids equal")
	}
}

func TestGridBinary(t *testing.T) {
	g := NewGrid(Bounds{X: 3, Y: 5, Z: 2})
	g.Set(2, 4, 1, block.Glass)
	g.Set(0, 0, 0, block.ID(700))
	data, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Grid
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(g) {
		t.Fatalf("decoded grid differs from the original")
	}
	if err := out.UnmarshalBinary(data[:len(data)-1]); err == nil {
		t.Fatalf("expected error for truncated data")
	}
}
