package utils

import (
	"sync"

	"github.com/oomph-ac/voxel/render"
)

// VertexListPool is a pool of reusable vertex slices used while meshing chunks.
var VertexListPool = sync.Pool{
	New: func() interface{} {
		s := make([]render.Vertex, 0, 4096) // Pre-allocate capacity for a typical chunk surface
		return &s
	},
}

// GetVertices retrieves an empty vertex slice from the pool
func GetVertices() *[]render.Vertex {
	list := VertexListPool.Get().(*[]render.Vertex)
	*list = (*list)[:0]
	return list
}

// PutVertices returns a vertex slice to the pool
func PutVertices(list *[]render.Vertex) {
	if list != nil {
		*list = (*list)[:0]
		VertexListPool.Put(list)
	}
}

// IndexListPool is a pool of reusable index slices used while meshing chunks.
var IndexListPool = sync.Pool{
	New: func() interface{} {
		s := make([]uint32, 0, 6144)
		return &s
	},
}

// GetIndices retrieves an empty index slice from the pool
func GetIndices() *[]uint32 {
	list := IndexListPool.Get().(*[]uint32)
	*list = (*list)[:0]
	return list
}

// PutIndices returns an index slice to the pool
func PutIndices(list *[]uint32) {
	if list != nil {
		*list = (*list)[:0]
		IndexListPool.Put(list)
	}
}
