package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/world/voxel"
)

// ChunkPos is the position of a chunk on the horizontal chunk grid.
type ChunkPos [2]int32

// X ...
func (p ChunkPos) X() int32 { return p[0] }

// Z ...
func (p ChunkPos) Z() int32 { return p[1] }

// Add returns the position offset by dx, dz chunks.
func (p ChunkPos) Add(dx, dz int32) ChunkPos {
	return ChunkPos{p[0] + dx, p[1] + dz}
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("(%d, %d)", p[0], p[1])
}

// Dimension describes the size of chunks and voxels in a world.
type Dimension struct {
	Bounds    voxel.Bounds
	VoxelSize float32
}

// DefaultDimension is a world of 16x128x16 chunks of unit voxels.
var DefaultDimension = Dimension{Bounds: voxel.DefaultBounds, VoxelSize: 1}

// TotalSize returns the world width of a chunk along X. Chunks are square unless configured otherwise.
func (d Dimension) TotalSize() float32 {
	return float32(d.Bounds.X) * d.VoxelSize
}

// Origin returns the world position of the centre of cell 0, 0, 0 of the chunk.
func (d Dimension) Origin(pos ChunkPos) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(pos[0]) * float32(d.Bounds.X) * d.VoxelSize,
		0,
		float32(pos[1]) * float32(d.Bounds.Z) * d.VoxelSize,
	}
}

// Height returns the world height of a chunk.
func (d Dimension) Height() float32 {
	return float32(d.Bounds.Y) * d.VoxelSize
}
