package world

import (
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/voxel"
)

// edge is a copy of the cells of a chunk that lie along one of its horizontal faces.
type edge struct {
	face   block.Face
	height int
	ids    []block.ID
	light  []uint8
}

func newEdge(g *voxel.Grid, l *voxel.Light, f block.Face) *edge {
	b := g.Bounds()
	e := &edge{face: f, height: b.Y}

	var x, z int
	switch f {
	case block.FaceRight:
		x = b.X - 1
	case block.FaceBack:
		z = b.Z - 1
	}
	if e.alongZ() {
		e.ids, e.light = make([]block.ID, b.Z*b.Y), make([]uint8, b.Z*b.Y)
		for z := 0; z < b.Z; z++ {
			copy(e.ids[z*b.Y:], g.Column(x, z))
			copy(e.light[z*b.Y:], l.Column(x, z))
		}
		return e
	}
	e.ids, e.light = make([]block.ID, b.X*b.Y), make([]uint8, b.X*b.Y)
	for x := 0; x < b.X; x++ {
		copy(e.ids[x*b.Y:], g.Column(x, z))
		copy(e.light[x*b.Y:], l.Column(x, z))
	}
	return e
}

// alongZ returns true if the edge runs along the Z axis, which is the case for left and right faces.
func (e *edge) alongZ() bool {
	return e.face == block.FaceLeft || e.face == block.FaceRight
}

func (e *edge) at(x, y, z int) (block.ID, uint8) {
	i := x*e.height + y
	if e.alongZ() {
		i = z*e.height + y
	}
	return e.ids[i], e.light[i]
}

// edges holds copies of the neighbouring cells of a chunk, indexed by the face of the chunk they touch.
// Copies are taken before meshing, so neighbours regenerating concurrently are never observed halfway.
type edges [4]*edge

// Sample ...
func (e edges) Sample(f block.Face, x, y, z int) (block.ID, uint8, bool) {
	if !f.Horizontal() || e[f] == nil {
		return block.Air, 0, false
	}
	id, l := e[f].at(x, y, z)
	return id, l, true
}

// edges returns the cells of the loaded neighbours of the chunk at pos that face it.
func (w *World) edges(pos ChunkPos) edges {
	var e edges
	for _, f := range block.HorizontalFaces() {
		dx, _, dz := f.Offset()
		if n := w.Chunk(pos.Add(int32(dx), int32(dz))); n != nil {
			e[f] = n.edge(f.Opposite())
		}
	}
	return e
}
