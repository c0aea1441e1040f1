package world

import (
	"reflect"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/world/block"
)

func meshes(c *Chunk) []*render.StaticMesh {
	var out []*render.StaticMesh
	for _, r := range c.Meshes() {
		out = append(out, r.Mesh())
	}
	return out
}

func TestRegenerateIsIdempotent(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	c := w.Chunk(ChunkPos{})
	before := meshes(c)
	regenerations := c.Regenerations()

	c.Regenerate(false)
	c.Regenerate(false)
	if got := c.Regenerations(); got != regenerations+2 {
		t.Fatalf("expected %d regenerations, got %d", regenerations+2, got)
	}
	after := meshes(c)
	for i := range before {
		if !reflect.DeepEqual(before[i].Vertices, after[i].Vertices) || !reflect.DeepEqual(before[i].Indices, after[i].Indices) {
			t.Fatalf("mesh %d changed after regenerating an unchanged chunk", i)
		}
	}
}

func TestRegeneratePropagatesToNeighbours(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	c := w.Chunk(ChunkPos{})
	counts := make(map[ChunkPos]int64)
	for _, n := range w.Chunks() {
		counts[n.Pos()] = n.Regenerations()
	}

	c.Regenerate(false)
	for _, n := range w.Chunks() {
		if n != c && n.Regenerations() != counts[n.Pos()] {
			t.Fatalf("chunk %v should not regenerate without propagation", n.Pos())
		}
	}

	c.Regenerate(true)
	for _, n := range w.Chunks() {
		want := counts[n.Pos()] + 1
		if n == c {
			want++
		}
		if n.Regenerations() != want {
			t.Fatalf("chunk %v: expected %d regenerations, got %d", n.Pos(), want, n.Regenerations())
		}
	}
}

func TestFacesAcrossChunkEdge(t *testing.T) {
	w, _, _ := newTestWorld(t, 1, true)
	settle(w, 10)

	left, right := w.Chunk(ChunkPos{}), w.Chunk(ChunkPos{1, 0})
	if left == nil || right == nil {
		t.Fatalf("both chunks should be live")
	}
	vertices := func(c *Chunk) int { return len(c.Meshes()[0].Mesh().Vertices) }
	leftBase, rightBase := vertices(left), vertices(right)

	w.Apply(left, SetBlockTransaction{BlockPos: cube.Pos{15, 120, 7}, Block: block.Stone})
	if got := vertices(left); got != leftBase+24 {
		t.Fatalf("a floating voxel should add 6 faces, got %d new vertices", got-leftBase)
	}
	if got := vertices(right); got != rightBase {
		t.Fatalf("neighbour should not change, got %d new vertices", got-rightBase)
	}

	// The voxels now touch across the edge, so neither side draws the face between them.
	w.Apply(right, SetBlockTransaction{BlockPos: cube.Pos{0, 120, 7}, Block: block.Stone})
	if got := vertices(left); got != leftBase+20 {
		t.Fatalf("left chunk: expected 5 new faces, got %d new vertices", got-leftBase)
	}
	if got := vertices(right); got != rightBase+20 {
		t.Fatalf("right chunk: expected 5 new faces, got %d new vertices", got-rightBase)
	}

	w.Apply(right, SetBlockTransaction{BlockPos: cube.Pos{0, 120, 7}, Block: block.Air})
	if got := vertices(left); got != leftBase+24 {
		t.Fatalf("removing the neighbour should expose the face again, got %d new vertices", got-leftBase)
	}
}

func TestChunkEdgeCopiesBorder(t *testing.T) {
	w, _, _ := newTestWorld(t, 0, true)
	settle(w, 2)

	c := w.Chunk(ChunkPos{})
	c.SetBlock(cube.Pos{15, 100, 4}, block.Glass)
	e := c.edge(block.FaceRight)
	c.SetBlock(cube.Pos{15, 100, 4}, block.Air)

	if id, _ := e.at(0, 100, 4); id != block.Glass {
		t.Fatalf("edge should hold a copy taken before the change, got %v", block.Name(id))
	}
	c.OnDestroy()
	if c.edge(block.FaceRight) != nil {
		t.Fatalf("closed chunks should not hand out edges")
	}
}
