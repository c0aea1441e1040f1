package render

import "go.uber.org/atomic"

// MeshRenderer is the component a rendering backend draws. The mesh is swapped atomically, so a
// reader always sees either the previous or the new mesh in full.
type MeshRenderer struct {
	material Material
	mesh     atomic.Pointer[StaticMesh]
	swaps    atomic.Int64
	released atomic.Bool
}

// NewMeshRenderer returns a renderer drawing an empty mesh with the material passed.
func NewMeshRenderer(mat Material) *MeshRenderer {
	r := &MeshRenderer{material: mat}
	r.mesh.Store(EmptyMesh())
	return r
}

// Material returns the material of the renderer. It never changes after creation.
func (r *MeshRenderer) Material() Material {
	return r.material
}

// Mesh returns the last mesh set on the renderer.
func (r *MeshRenderer) Mesh() *StaticMesh {
	return r.mesh.Load()
}

// SetMesh replaces the mesh drawn. It returns false if the renderer was already released.
func (r *MeshRenderer) SetMesh(m *StaticMesh) bool {
	if r.released.Load() {
		return false
	}
	if m == nil {
		m = EmptyMesh()
	}
	r.mesh.Store(m)
	r.swaps.Inc()
	return true
}

// Swaps returns how many times the mesh was replaced.
func (r *MeshRenderer) Swaps() int64 {
	return r.swaps.Load()
}

// Release drops the mesh. Later calls to SetMesh are ignored.
func (r *MeshRenderer) Release() {
	if r.released.CompareAndSwap(false, true) {
		r.mesh.Store(EmptyMesh())
	}
}

// Released returns true if Release was called.
func (r *MeshRenderer) Released() bool {
	return r.released.Load()
}

// OnDestroy releases the renderer when its entity is removed.
func (r *MeshRenderer) OnDestroy() {
	r.Release()
}
