package render

// DepthMode controls how a material interacts with the depth buffer.
type DepthMode uint8

const (
	// DepthDefault tests against and writes to the depth buffer.
	DepthDefault DepthMode = iota
	// DepthRead tests against the depth buffer without writing to it.
	DepthRead
)

// Material describes how the geometry of a renderer is drawn.
type Material struct {
	Texture     *Texture
	Transparent bool
	Depth       DepthMode
	// SortOrder orders draws; lower values are drawn first.
	SortOrder int
	// VertexColor multiplies the texture by the vertex colour, which carries the sky light shade.
	VertexColor bool
}

// OpaqueMaterial returns the material of the opaque geometry of a chunk.
func OpaqueMaterial(tex *Texture) Material {
	return Material{Texture: tex, VertexColor: true}
}

// TransparentMaterial returns the material of a transparent layer of a chunk. Layers are drawn after
// all opaque geometry, in ascending order.
func TransparentMaterial(tex *Texture, layer int) Material {
	return Material{
		Texture:     tex,
		Transparent: true,
		Depth:       DepthRead,
		SortOrder:   layer + 2,
		VertexColor: true,
	}
}
