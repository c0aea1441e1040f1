package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/game"
	"github.com/oomph-ac/voxel/world/block"
)

// RaycastStep is the distance between two samples of a ray march.
const RaycastStep = 0.001

// RaycastResult describes the voxel hit by a ray.
type RaycastResult struct {
	// Point is the first sampled point inside the voxel.
	Point mgl32.Vec3
	Chunk *Chunk
	// Pos is the local position of the voxel in Chunk.
	Pos cube.Pos
	// Normal is the outward normal of the face the ray entered through.
	Normal mgl32.Vec3
	Face   block.Face
}

// Raycast marches from origin along dir and returns the first solid voxel within maxDist. Cells in
// chunks that are not loaded, or not yet filled, are skipped.
func (w *World) Raycast(origin, dir mgl32.Vec3, maxDist float32) (RaycastResult, bool) {
	var (
		lastCell  cube.Pos
		lastChunk *Chunk
		first     = true
	)
	for p := range game.March(origin, dir, RaycastStep, maxDist) {
		cell := w.dim.Cell(p)
		if !first && cell == lastCell {
			continue
		}
		first = false
		lastCell = cell

		pos, local := w.dim.Locate(cell)
		if !w.dim.Bounds.ContainsPos(local) {
			continue
		}
		c := lastChunk
		if c == nil || c.Pos() != pos {
			if c = w.Chunk(pos); c == nil {
				continue
			}
			lastChunk = c
		}
		if !c.Ready() || !c.Solid(local) {
			continue
		}

		normal := game.HitNormal(p.Sub(w.dim.CellCentre(cell)))
		face, _ := block.FaceFromNormal(normal)
		return RaycastResult{Point: p, Chunk: c, Pos: local, Normal: normal, Face: face}, true
	}
	return RaycastResult{}, false
}

// Resolve returns the chunk and local position of a position given relative to the chunk at pos.
// Positions past the horizontal edges resolve to the neighbouring chunk. ok is false if the position
// is outside of the vertical bounds or its chunk is not loaded and filled.
func (w *World) Resolve(pos ChunkPos, local cube.Pos) (*Chunk, cube.Pos, bool) {
	target, l := w.dim.Locate(w.dim.WorldCell(pos, local))
	if !w.dim.Bounds.ContainsPos(l) {
		return nil, cube.Pos{}, false
	}
	c := w.Chunk(target)
	if c == nil || !c.Ready() {
		return nil, cube.Pos{}, false
	}
	return c, l, true
}

// Locate returns the loaded chunk and the local position of the cell containing the world point
// passed.
func (w *World) Locate(p mgl32.Vec3) (*Chunk, cube.Pos, bool) {
	pos, local := w.dim.Locate(w.dim.Cell(p))
	if !w.dim.Bounds.ContainsPos(local) {
		return nil, cube.Pos{}, false
	}
	c := w.Chunk(pos)
	if c == nil {
		return nil, cube.Pos{}, false
	}
	return c, local, true
}
