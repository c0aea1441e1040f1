package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/utils"
	"github.com/oomph-ac/voxel/world/block"
	"github.com/oomph-ac/voxel/world/voxel"
)

// MinShade is the darkest shade a face can receive.
const MinShade = 0.1

// Neighbours gives the mesher read access to the chunks next to the one being meshed.
type Neighbours interface {
	// Sample returns the block and light at local position x, y, z of the chunk adjacent across the
	// horizontal face passed. ok is false if that chunk is not loaded.
	Sample(face block.Face, x, y, z int) (id block.ID, light uint8, ok bool)
}

// Config configures a Mesher.
type Config struct {
	// VoxelSize is the world size of one cell.
	VoxelSize float32
	// AtlasCells is the amount of cells per row of the texture atlas.
	AtlasCells int
	// MaxLight is the light value drawn at full brightness.
	MaxLight uint8
}

// DefaultConfig returns the default mesher configuration.
func DefaultConfig() Config {
	return Config{VoxelSize: 1, AtlasCells: 16, MaxLight: voxel.MaxSkyLight}
}

// Mesher turns chunk grids into meshes.
type Mesher struct {
	conf Config
}

// New returns a Mesher with the configuration passed.
func New(conf Config) *Mesher {
	return &Mesher{conf: conf}
}

// Result holds the meshes of one chunk.
type Result struct {
	Opaque *render.StaticMesh
	Layers [block.TransparentLayers]*render.StaticMesh

	// Faces is the amount of voxel faces emitted across all meshes.
	Faces int
	// Billboards is the amount of billboards emitted.
	Billboards int
}

// Build meshes the grid passed. Light is sampled from l, and cells across the horizontal edges of
// the chunk are read through n, which may be nil if no neighbours are loaded.
func (m *Mesher) Build(g *voxel.Grid, l *voxel.Light, n Neighbours) Result {
	b := g.Bounds()

	opaque := newBuffer()
	defer opaque.release()
	var layers [block.TransparentLayers]*buffer
	for i := range layers {
		layers[i] = newBuffer()
		defer layers[i].release()
	}

	var res Result
	for x := 0; x < b.X; x++ {
		for z := 0; z < b.Z; z++ {
			for y := 0; y < b.Y; y++ {
				id := g.At(x, y, z)
				if id == block.Air {
					continue
				}

				dst := opaque
				if layer := block.Layer(id); layer >= 0 {
					dst = layers[layer]
				}
				centre := mgl32.Vec3{float32(x), float32(y), float32(z)}.Mul(m.conf.VoxelSize)

				if block.Billboard(id) {
					uv := AtlasUV(block.TextureIndex(id, block.FaceFront), m.conf.AtlasCells)
					v, idx := Billboard(centre, m.conf.VoxelSize, uv, m.shade(l.At(x, y, z)))
					dst.add(v[:], idx[:])
					res.Billboards++
					continue
				}

				for _, face := range block.Faces() {
					nid, nlight := m.neighbour(g, l, n, face, x, y, z)
					if !Visible(id, nid) {
						continue
					}
					uv := AtlasUV(block.TextureIndex(id, face), m.conf.AtlasCells)
					v, idx := Quad(face, centre, m.conf.VoxelSize, uv, m.shade(nlight))
					dst.add(v[:], idx[:])
					res.Faces++
				}
			}
		}
	}

	res.Opaque = opaque.mesh()
	for i := range layers {
		res.Layers[i] = layers[i].mesh()
	}
	return res
}

// Visible returns true if a face of a block of type id touching a block of type neighbour is drawn.
func Visible(id, neighbour block.ID) bool {
	if neighbour == block.Air {
		return true
	}
	return block.Transparent(neighbour) && (neighbour != id || !block.Transparent(id))
}

// neighbour returns the block and light of the cell across face from x, y, z. Cells past the top of
// the chunk are air in full light, and cells below its bottom are air in darkness. Cells in a chunk
// that is not loaded are air in full light, so the frontier of the loaded world stays closed.
func (m *Mesher) neighbour(g *voxel.Grid, l *voxel.Light, n Neighbours, face block.Face, x, y, z int) (block.ID, uint8) {
	b := g.Bounds()
	dx, dy, dz := face.Offset()
	nx, ny, nz := x+dx, y+dy, z+dz

	switch {
	case ny < 0:
		return block.Air, 0
	case ny >= b.Y:
		return block.Air, m.conf.MaxLight
	case b.Contains(nx, ny, nz):
		return g.At(nx, ny, nz), l.At(nx, ny, nz)
	}
	if n == nil {
		return block.Air, m.conf.MaxLight
	}
	id, light, ok := n.Sample(face, wrap(nx, b.X), ny, wrap(nz, b.Z))
	if !ok {
		return block.Air, m.conf.MaxLight
	}
	return id, light
}

func (m *Mesher) shade(light uint8) float32 {
	return max(float32(light)/float32(m.conf.MaxLight), MinShade)
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}

// buffer accumulates the geometry of one mesh. Indices added are offset by the vertices already held.
type buffer struct {
	vertices *[]render.Vertex
	indices  *[]uint32
}

func newBuffer() *buffer {
	return &buffer{vertices: utils.GetVertices(), indices: utils.GetIndices()}
}

func (b *buffer) add(vertices []render.Vertex, indices []uint32) {
	offset := uint32(len(*b.vertices))
	*b.vertices = append(*b.vertices, vertices...)
	for _, i := range indices {
		*b.indices = append(*b.indices, i+offset)
	}
}

// mesh copies the buffer into a mesh. Empty buffers produce an empty mesh.
func (b *buffer) mesh() *render.StaticMesh {
	if len(*b.indices) == 0 {
		return render.EmptyMesh()
	}
	m := &render.StaticMesh{
		Vertices: make([]render.Vertex, len(*b.vertices)),
		Indices:  make([]uint32, len(*b.indices)),
	}
	copy(m.Vertices, *b.vertices)
	copy(m.Indices, *b.indices)
	return m
}

func (b *buffer) release() {
	utils.PutVertices(b.vertices)
	utils.PutIndices(b.indices)
}
