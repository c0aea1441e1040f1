package world

import (
	"iter"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/mesh"
	"github.com/oomph-ac/voxel/world/voxel"
)

// settleWater floods every air cell at or below the water level that is connected to water, including
// water in the loaded neighbours of the chunk. It returns the amount of cells flooded.
func settleWater(g *voxel.Grid, n mesh.Neighbours, waterLevel int) int {
	b := g.Bounds()
	top := min(waterLevel, b.Y-1)
	if top < 0 {
		return 0
	}

	var (
		queue   []cube.Pos
		flooded int
	)
	flood := func(x, y, z int) {
		g.Set(x, y, z, block.Water)
		queue = append(queue, cube.Pos{x, y, z})
		flooded++
	}

	for x := 0; x < b.X; x++ {
		for z := 0; z < b.Z; z++ {
			col := g.Column(x, z)
			for y := 0; y <= min(top+1, b.Y-1); y++ {
				if col[y] == block.Water {
					queue = append(queue, cube.Pos{x, y, z})
				}
			}
		}
	}

	// Water across the chunk edges flows into the border cells.
	for _, f := range block.HorizontalFaces() {
		dx, _, dz := f.Offset()
		for x, z := range border(b, f) {
			for y := 0; y <= top; y++ {
				if g.At(x, y, z) != block.Air {
					continue
				}
				if id, _, ok := n.Sample(f, wrap(x+dx, b.X), y, wrap(z+dz, b.Z)); ok && id == block.Water {
					flood(x, y, z)
				}
			}
		}
	}

	for len(queue) > 0 {
		pos := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, f := range block.Faces() {
			dx, dy, dz := f.Offset()
			x, y, z := pos[0]+dx, pos[1]+dy, pos[2]+dz
			if y > top || !b.Contains(x, y, z) || g.At(x, y, z) != block.Air {
				continue
			}
			flood(x, y, z)
		}
	}
	return flooded
}

// border yields the x, z of every column of a chunk lying along a horizontal face.
func border(b voxel.Bounds, f block.Face) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		switch f {
		case block.FaceLeft, block.FaceRight:
			x := 0
			if f == block.FaceRight {
				x = b.X - 1
			}
			for z := 0; z < b.Z; z++ {
				if !yield(x, z) {
					return
				}
			}
		default:
			z := 0
			if f == block.FaceBack {
				z = b.Z - 1
			}
			for x := 0; x < b.X; x++ {
				if !yield(x, z) {
					return
				}
			}
		}
	}
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}
