package voxel

import (
	"encoding/binary"
	"fmt"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/voxel/assert"
	"github.com/oomph-ac/voxel/world/block"
)

// Bounds is the size of a chunk's grid on each axis.
type Bounds struct {
	X, Y, Z int
}

// DefaultBounds are the bounds of a chunk unless configured otherwise.
var DefaultBounds = Bounds{X: 16, Y: 128, Z: 16}

// Contains returns true if the local position lies inside the bounds.
func (b Bounds) Contains(x, y, z int) bool {
	return x >= 0 && x < b.X && y >= 0 && y < b.Y && z >= 0 && z < b.Z
}

// ContainsPos is Contains for a cube.Pos.
func (b Bounds) ContainsPos(pos cube.Pos) bool {
	return b.Contains(pos[0], pos[1], pos[2])
}

// Volume returns the amount of cells in a grid of these bounds.
func (b Bounds) Volume() int {
	return b.X * b.Y * b.Z
}

func (b Bounds) index(x, y, z int) int {
	assert.InRange(x, b.X, "x")
	assert.InRange(y, b.Y, "y")
	assert.InRange(z, b.Z, "z")
	return (x*b.Z+z)*b.Y + y
}

// Grid holds the block ids of one chunk. Cells of a column are stored contiguously, bottom first.
type Grid struct {
	bounds Bounds
	cells  []block.ID
}

// NewGrid returns a grid of the given bounds filled with air.
func NewGrid(b Bounds) *Grid {
	assert.IsTrue(b.X > 0 && b.Y > 0 && b.Z > 0, "invalid grid bounds %+v", b)
	return &Grid{bounds: b, cells: make([]block.ID, b.Volume())}
}

// Bounds returns the bounds of the grid.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// At returns the block at a local position. Positions outside the bounds panic.
func (g *Grid) At(x, y, z int) block.ID {
	return g.cells[g.bounds.index(x, y, z)]
}

// Set sets the block at a local position. Positions outside the bounds panic.
func (g *Grid) Set(x, y, z int, id block.ID) {
	g.cells[g.bounds.index(x, y, z)] = id
}

// Column returns the cells of the column at x, z, indexed by y. The slice aliases the grid.
func (g *Grid) Column(x, z int) []block.ID {
	start := g.bounds.index(x, 0, z)
	return g.cells[start : start+g.bounds.Y]
}

// Fill sets every cell of the grid to id.
func (g *Grid) Fill(id block.ID) {
	for i := range g.cells {
		g.cells[i] = id
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{bounds: g.bounds, cells: make([]block.ID, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites the grid with the contents of src, which must have the same bounds.
func (g *Grid) CopyFrom(src *Grid) {
	assert.IsTrue(g.bounds == src.bounds, "grid bounds mismatch: %+v != %+v", g.bounds, src.bounds)
	copy(g.cells, src.cells)
}

// Equal returns true if both grids have the same bounds and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.bounds != o.bounds {
		return false
	}
	for i, id := range g.cells {
		if o.cells[i] != id {
			return false
		}
	}
	return true
}

// Count returns the amount of cells holding id.
func (g *Grid) Count(id block.ID) int {
	var n int
	for _, c := range g.cells {
		if c == id {
			n++
		}
	}
	return n
}

const gridHeaderSize = 6

// MarshalBinary encodes the grid as its bounds followed by little-endian cells.
func (g *Grid) MarshalBinary() ([]byte, error) {
	return g.AppendBinary(make([]byte, 0, gridHeaderSize+len(g.cells)*2))
}

// AppendBinary appends the encoding of MarshalBinary to b.
func (g *Grid) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint16(b, uint16(g.bounds.X))
	b = binary.LittleEndian.AppendUint16(b, uint16(g.bounds.Y))
	b = binary.LittleEndian.AppendUint16(b, uint16(g.bounds.Z))
	for _, c := range g.cells {
		b = binary.LittleEndian.AppendUint16(b, uint16(c))
	}
	return b, nil
}

// UnmarshalBinary decodes a grid produced by MarshalBinary.
func (g *Grid) UnmarshalBinary(data []byte) error {
	if len(data) < gridHeaderSize {
		return fmt.Errorf("grid data too short: %d bytes", len(data))
	}
	b := Bounds{
		X: int(binary.LittleEndian.Uint16(data[0:])),
		Y: int(binary.LittleEndian.Uint16(data[2:])),
		Z: int(binary.LittleEndian.Uint16(data[4:])),
	}
	if b.Volume() <= 0 {
		return fmt.Errorf("invalid grid bounds %+v", b)
	}
	if want := gridHeaderSize + b.Volume()*2; len(data) != want {
		return fmt.Errorf("grid data length %d does not match bounds %+v (want %d)", len(data), b, want)
	}
	g.bounds = b
	g.cells = make([]block.ID, b.Volume())
	for i := range g.cells {
		g.cells[i] = block.ID(binary.LittleEndian.Uint16(data[gridHeaderSize+i*2:]))
	}
	return nil
}
