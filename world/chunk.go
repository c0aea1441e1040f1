package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/entity"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/light"
	"github.com/oomph-ac/voxel/world/mesh"
	"github.com/oomph-ac/voxel/world/voxel"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// Chunk is the component holding the blocks and meshes of one chunk of the world.
type Chunk struct {
	pos    ChunkPos
	world  *World
	entity *entity.Entity

	// mu protects all the following fields.
	mu deadlock.RWMutex
	// grid holds the blocks of the chunk. It is empty until the chunk is ready.
	grid *voxel.Grid
	// light holds the sky light computed on the last regeneration.
	light *voxel.Light
	// ready is true once the chunk has been filled from the cache or the generator.
	ready bool

	opaque *render.MeshRenderer
	layers [block.TransparentLayers]*render.MeshRenderer

	closed        atomic.Bool
	regenerations atomic.Int64
}

func newChunk(w *World, pos ChunkPos, e *entity.Entity) *Chunk {
	c := &Chunk{
		pos:    pos,
		world:  w,
		entity: e,
		grid:   voxel.NewGrid(w.dim.Bounds),
		light:  voxel.NewLight(w.dim.Bounds),
		opaque: render.NewMeshRenderer(render.OpaqueMaterial(w.atlas)),
	}
	for i := range c.layers {
		c.layers[i] = render.NewMeshRenderer(render.TransparentMaterial(w.atlas, i))
	}
	return c
}

// Pos returns the position of the chunk on the chunk grid.
func (c *Chunk) Pos() ChunkPos {
	return c.pos
}

// Origin returns the world position of the centre of the chunk's first cell.
func (c *Chunk) Origin() mgl32.Vec3 {
	return c.world.dim.Origin(c.pos)
}

// Entity returns the entity the chunk is attached to.
func (c *Chunk) Entity() *entity.Entity {
	return c.entity
}

// Ready returns true once the chunk holds its blocks.
func (c *Chunk) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Closed returns true once the chunk has been unloaded.
func (c *Chunk) Closed() bool {
	return c.closed.Load()
}

// Block returns the block at a local position. Positions outside the chunk panic.
func (c *Chunk) Block(pos cube.Pos) block.ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.At(pos[0], pos[1], pos[2])
}

// SetBlock sets the block at a local position without remeshing. Positions outside the chunk panic.
func (c *Chunk) SetBlock(pos cube.Pos, id block.ID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Set(pos[0], pos[1], pos[2], id)
}

// Solid returns true if the block at a local position stops rays.
func (c *Chunk) Solid(pos cube.Pos) bool {
	return block.Solid(c.Block(pos))
}

// Light returns the sky light at a local position as of the last regeneration.
func (c *Chunk) Light(pos cube.Pos) uint8 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.light.At(pos[0], pos[1], pos[2])
}

// Snapshot returns a copy of the blocks of the chunk.
func (c *Chunk) Snapshot() *voxel.Grid {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.Clone()
}

// Meshes returns the renderer of the opaque geometry followed by one renderer per transparent layer.
func (c *Chunk) Meshes() []*render.MeshRenderer {
	return append([]*render.MeshRenderer{c.opaque}, c.layers[:]...)
}

// Regenerations returns how many times the chunk was regenerated.
func (c *Chunk) Regenerations() int64 {
	return c.regenerations.Load()
}

// install replaces the blocks of the chunk and marks it ready.
func (c *Chunk) install(g *voxel.Grid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.CopyFrom(g)
	c.ready = true
}

// Regenerate settles water, recomputes light and rebuilds the meshes of the chunk. With propagate set,
// the four loaded neighbours are regenerated afterwards so faces along shared edges stay consistent.
func (c *Chunk) Regenerate(propagate bool) {
	if c.closed.Load() {
		return
	}
	edges := c.world.edges(c.pos)

	c.mu.Lock()
	if !c.ready {
		c.mu.Unlock()
		return
	}
	settled := settleWater(c.grid, edges, c.world.waterLevel)
	light.Propagate(c.grid, c.light, voxel.MaxSkyLight)
	res := c.world.mesher.Build(c.grid, c.light, edges)
	var snapshot *voxel.Grid
	if settled > 0 {
		snapshot = c.grid.Clone()
	}
	c.mu.Unlock()

	c.swap(res)
	c.regenerations.Inc()
	if snapshot != nil {
		c.world.logger.Debug("water settled", "chunk", c.pos, "cells", settled)
		c.world.cacheUpdate(c.pos, snapshot)
	}

	if propagate {
		for _, f := range block.HorizontalFaces() {
			dx, _, dz := f.Offset()
			if n := c.world.Chunk(c.pos.Add(int32(dx), int32(dz))); n != nil {
				n.Regenerate(false)
			}
		}
	}
}

// swap hands the meshes built to the renderers. A chunk closed while meshing keeps its released
// renderers untouched.
func (c *Chunk) swap(res mesh.Result) {
	if c.closed.Load() {
		c.world.logger.Debug("dropped meshes of closed chunk", "chunk", c.pos)
		return
	}
	c.opaque.SetMesh(res.Opaque)
	for i, r := range c.layers {
		r.SetMesh(res.Layers[i])
	}
}

// edge copies the cells of the chunk lying along the face passed. It returns nil if the chunk is
// not ready.
func (c *Chunk) edge(f block.Face) *edge {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ready || c.closed.Load() {
		return nil
	}
	return newEdge(c.grid, c.light, f)
}

// OnDestroy releases the meshes of the chunk when its entity is removed.
func (c *Chunk) OnDestroy() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	for _, r := range c.Meshes() {
		r.Release()
	}
}

// BBox returns the world space box the cells of the chunk occupy.
func (c *Chunk) BBox() cube.BBox {
	d := c.world.dim
	half := d.VoxelSize / 2
	o := c.Origin()
	return cube.Box(
		o.X()-half, -half, o.Z()-half,
		o.X()+float32(d.Bounds.X)*d.VoxelSize-half, d.Height()-half, o.Z()+float32(d.Bounds.Z)*d.VoxelSize-half,
	)
}
