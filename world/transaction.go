package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxel/world/block"
)

// SetBlockTransaction is a transaction that sets a block at a local position of a chunk.
type SetBlockTransaction struct {
	BlockPos cube.Pos
	Block    block.ID
}

// Execute applies the transaction and returns the block that was replaced.
func (tx SetBlockTransaction) Execute(c ChunkSource) block.ID {
	prev := c.Block(tx.BlockPos)
	c.SetBlock(tx.BlockPos, tx.Block)
	return prev
}
