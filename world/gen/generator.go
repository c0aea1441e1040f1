package gen

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
	"github.com/oomph-ac/voxel/worker"
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/voxel"
	"go.uber.org/atomic"
)

// Config holds the parameters of terrain generation.
type Config struct {
	// Seed seeds the height noise. Decoration is seeded from each chunk's origin instead.
	Seed int64
	// Frequency scales world coordinates before sampling the height noise.
	Frequency float32
	// Amplitude is the largest height offset above half of the chunk height.
	Amplitude float32
	// WaterHeight is the water level measured from half of the chunk height.
	WaterHeight int
	// TreeChance is the chance of a grass cell spawning a tree.
	TreeChance float64
	// TallGrassChance is the chance of a grass cell growing a tall grass tuft.
	TallGrassChance float64
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		Seed:            1,
		Frequency:       0.005,
		Amplitude:       25.5,
		WaterHeight:     10,
		TreeChance:      0.01,
		TallGrassChance: 0.08,
	}
}

const (
	treeHeight  = 7
	trunkHeight = 3
	treeWidth   = 2
)

// Generator fills chunk grids with terrain. It is safe to use from multiple goroutines.
type Generator struct {
	conf  Config
	noise opensimplex.Noise32

	generated atomic.Int64
}

// New returns a Generator using the configuration passed.
func New(conf Config) *Generator {
	return &Generator{conf: conf, noise: opensimplex.NewNormalized32(conf.Seed)}
}

// Config returns the configuration of the generator.
func (g *Generator) Config() Config {
	return g.conf
}

// WaterLevel returns the highest cell filled with water for grids of the bounds passed.
func (g *Generator) WaterLevel(b voxel.Bounds) int {
	return b.Y/2 + g.conf.WaterHeight
}

// Generated returns the amount of grids generated so far.
func (g *Generator) Generated() int64 {
	return g.generated.Load()
}

// Height returns the terrain surface height of the column at the world coordinates passed.
func (g *Generator) Height(worldX, worldZ float32, b voxel.Bounds) int {
	n := g.noise.Eval2(worldX*g.conf.Frequency, worldZ*g.conf.Frequency)
	h := int(math32.Floor(float32(b.Y/2) + n*g.conf.Amplitude))
	return max(0, min(h, b.Y-1))
}

// Generate returns a new grid for the chunk whose world origin is passed. Voxel size is the world
// size of one cell.
func (g *Generator) Generate(origin mgl32.Vec3, b voxel.Bounds, voxelSize float32) *voxel.Grid {
	grid := voxel.NewGrid(b)
	waterLevel := g.WaterLevel(b)

	// Columns of one x row only touch their own cells.
	worker.ParallelFor(b.X, func(x int) {
		worldX := origin.X() + float32(x)*voxelSize
		for z := 0; z < b.Z; z++ {
			worldZ := origin.Z() + float32(z)*voxelSize
			g.fillColumn(grid.Column(x, z), g.Height(worldX, worldZ, b), waterLevel)
		}
	})
	g.decorate(grid, rand.New(rand.NewSource(int64(origin.X())+int64(origin.Z()))))

	g.generated.Inc()
	return grid
}

func (g *Generator) fillColumn(col []block.ID, height, waterLevel int) {
	for y := range col {
		switch {
		case y == height && height <= waterLevel:
			col[y] = block.Sand
		case y == height:
			col[y] = block.Grass
		case y == height-1:
			col[y] = block.Dirt
		case y < height:
			col[y] = block.Stone
		case y <= waterLevel:
			col[y] = block.Water
		default:
			col[y] = block.Air
		}
	}
}

// decorate places trees and tall grass on grass cells. Visiting order is fixed so that the same
// seed always decorates a chunk the same way.
func (g *Generator) decorate(grid *voxel.Grid, r *rand.Rand) {
	b := grid.Bounds()
	for x := 0; x < b.X; x++ {
		for z := 0; z < b.Z; z++ {
			for y := 0; y < b.Y; y++ {
				if grid.At(x, y, z) != block.Grass {
					continue
				}
				roll := r.Float64()
				switch {
				case roll > 1-g.conf.TreeChance:
					g.placeTree(grid, x, y, z)
				case roll < g.conf.TallGrassChance:
					if y+1 < b.Y && grid.At(x, y+1, z) == block.Air {
						grid.Set(x, y+1, z, block.TallGrass)
					}
				}
			}
		}
	}
}

// placeTree grows a tree on the grass cell at x, y, z if the whole tree fits inside the chunk.
func (g *Generator) placeTree(grid *voxel.Grid, x, y, z int) {
	b := grid.Bounds()
	if y+treeHeight >= b.Y || x+treeWidth >= b.X || z+treeWidth >= b.Z || x-treeWidth <= 0 || z-treeWidth <= 0 {
		return
	}
	for ty := y + 1; ty < y+1+trunkHeight; ty++ {
		if grid.At(x, ty, z) == block.Air {
			grid.Set(x, ty, z, block.OakLog)
		}
	}

	canopyStart := y + trunkHeight + 1
	for cy := canopyStart; cy < y+treeHeight; cy++ {
		radius := max(1, treeWidth-(cy-canopyStart))
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if abs(dx) == radius && abs(dz) == radius {
					continue
				}
				if grid.At(x+dx, cy, z+dz) == block.Air {
					grid.Set(x+dx, cy, z+dz, block.OakLeaves)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
