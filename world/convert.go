package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Centre returns the chunk whose origin is nearest to the world position passed.
func (d Dimension) Centre(p mgl32.Vec3) ChunkPos {
	sizeX := float32(d.Bounds.X) * d.VoxelSize
	sizeZ := float32(d.Bounds.Z) * d.VoxelSize
	return ChunkPos{int32(math32.Round(p.X() / sizeX)), int32(math32.Round(p.Z() / sizeZ))}
}

// Cell returns the world cell containing the point passed. Cell centres lie on multiples of the voxel
// size, so each cell extends half a voxel in every direction.
func (d Dimension) Cell(p mgl32.Vec3) cube.Pos {
	half := d.VoxelSize / 2
	return cube.Pos{
		int(math32.Floor((p.X() + half) / d.VoxelSize)),
		int(math32.Floor((p.Y() + half) / d.VoxelSize)),
		int(math32.Floor((p.Z() + half) / d.VoxelSize)),
	}
}

// Locate returns the chunk and local position of a world cell. The local Y is not range checked.
func (d Dimension) Locate(cell cube.Pos) (ChunkPos, cube.Pos) {
	cx, lx := floorDiv(cell[0], d.Bounds.X)
	cz, lz := floorDiv(cell[2], d.Bounds.Z)
	return ChunkPos{int32(cx), int32(cz)}, cube.Pos{lx, cell[1], lz}
}

// WorldCell returns the world cell of a local position in the chunk passed.
func (d Dimension) WorldCell(pos ChunkPos, local cube.Pos) cube.Pos {
	return cube.Pos{
		int(pos[0])*d.Bounds.X + local[0],
		local[1],
		int(pos[1])*d.Bounds.Z + local[2],
	}
}

// CellCentre returns the world position of the centre of a world cell.
func (d Dimension) CellCentre(cell cube.Pos) mgl32.Vec3 {
	return mgl32.Vec3{float32(cell[0]), float32(cell[1]), float32(cell[2])}.Mul(d.VoxelSize)
}

func floorDiv(v, size int) (q, r int) {
	q = v / size
	r = v % size
	if r < 0 {
		q--
		r += size
	}
	return q, r
}
