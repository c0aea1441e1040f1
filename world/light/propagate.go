// Package light computes the sky exposure of every cell of a chunk. Values are only used to shade
// faces and never travel across chunk borders.
package light

import (
	"github.com/oomph-ac/voxel/assert"
	"github.com/oomph-ac/voxel/worker"
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/voxel"
)

// Propagate fills l with the sky light of every cell of g. Each column is scanned from the top: cells
// keep the max value until the first non-empty cell, which still receives it. Below that, every solid
// cell dims the column by one and non-solid cells keep the current value.
func Propagate(g *voxel.Grid, l *voxel.Light, maxLight uint8) {
	b := g.Bounds()
	assert.IsTrue(l.Bounds() == b, "light bounds %+v do not match grid bounds %+v", l.Bounds(), b)

	worker.ParallelFor(b.X, func(x int) {
		for z := 0; z < b.Z; z++ {
			Column(g.Column(x, z), l.Column(x, z), maxLight)
		}
	})
}

// Column computes the light of a single column. ids and out are indexed by y.
func Column(ids []block.ID, out []uint8, maxLight uint8) {
	exposed := true
	value := maxLight
	for y := len(ids) - 1; y >= 0; y-- {
		id := ids[y]
		if exposed {
			out[y] = maxLight
			if id != block.Air {
				exposed = false
			}
			continue
		}
		if block.Solid(id) && value > 0 {
			value--
		}
		out[y] = value
	}
}
