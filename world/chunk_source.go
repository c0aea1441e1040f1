package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxel/world/block"
)

// ChunkSource is an interface that returns and sets block information like a regular chunk.
type ChunkSource interface {
	// Block returns the block at the given local position of the chunk source.
	Block(pos cube.Pos) block.ID
	// SetBlock sets the block at the given local position of the chunk source.
	SetBlock(pos cube.Pos, id block.ID)
}
