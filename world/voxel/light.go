package voxel

import "github.com/oomph-ac/voxel/assert"

// MaxSkyLight is the light value of a cell that sees the sky directly.
const MaxSkyLight = 15

// Light holds one sky light value per cell of a chunk, laid out like Grid.
type Light struct {
	bounds Bounds
	values []uint8
}

// NewLight returns a light grid of the given bounds with every cell dark.
func NewLight(b Bounds) *Light {
	assert.IsTrue(b.X > 0 && b.Y > 0 && b.Z > 0, "invalid light bounds %+v", b)
	return &Light{bounds: b, values: make([]uint8, b.Volume())}
}

// Bounds returns the bounds of the light grid.
func (l *Light) Bounds() Bounds {
	return l.bounds
}

// At returns the light value at a local position.
func (l *Light) At(x, y, z int) uint8 {
	return l.values[l.bounds.index(x, y, z)]
}

// Set sets the light value at a local position.
func (l *Light) Set(x, y, z int, v uint8) {
	l.values[l.bounds.index(x, y, z)] = v
}

// Column returns the light values of the column at x, z, indexed by y.
func (l *Light) Column(x, z int) []uint8 {
	start := l.bounds.index(x, 0, z)
	return l.values[start : start+l.bounds.Y]
}
