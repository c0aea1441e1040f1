// Package render holds the data handed from the chunk engine to a rendering backend: vertex data,
// materials and the renderer components that carry them.
package render

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a single vertex of a chunk mesh. Color carries the light shade of the vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Color    mgl32.Vec4
}

// StaticMesh is an indexed triangle list. Index values refer to Vertices of the same mesh.
type StaticMesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// EmptyMesh returns a mesh without any geometry.
func EmptyMesh() *StaticMesh {
	return &StaticMesh{}
}

// Empty returns true if the mesh holds no triangles.
func (m *StaticMesh) Empty() bool {
	return m == nil || len(m.Indices) == 0
}

// Triangles returns the amount of triangles of the mesh.
func (m *StaticMesh) Triangles() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}
