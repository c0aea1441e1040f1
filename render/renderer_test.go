package render

import "testing"

func TestMeshRendererSwap(t *testing.T) {
	r := NewMeshRenderer(OpaqueMaterial(&Texture{Name: "atlas"}))
	if !r.Mesh().Empty() {
		t.Fatalf("new renderer should draw an empty mesh")
	}

	m := &StaticMesh{Vertices: make([]Vertex, 4), Indices: []uint32{0, 2, 3, 0, 1, 2}}
	if !r.SetMesh(m) {
		t.Fatalf("SetMesh on a live renderer should succeed")
	}
	if r.Mesh() != m || r.Mesh().Triangles() != 2 {
		t.Fatalf("renderer should draw the mesh that was set")
	}

	r.SetMesh(nil)
	if !r.Mesh().Empty() {
		t.Fatalf("setting a nil mesh should draw an empty mesh")
	}

	r.OnDestroy()
	if !r.Released() || !r.Mesh().Empty() {
		t.Fatalf("released renderer should drop its mesh")
	}
	if r.SetMesh(m) {
		t.Fatalf("SetMesh after release should be ignored")
	}
	if r.Swaps() != 2 {
		t.Fatalf("expected 2 swaps, got %d", r.Swaps())
	}
}

func TestTransparentMaterial(t *testing.T) {
	tex := &Texture{Name: "atlas"}
	for layer := 0; layer < 2; layer++ {
		m := TransparentMaterial(tex, layer)
		if !m.Transparent || m.Depth != DepthRead || m.SortOrder != layer+2 {
			t.Fatalf("unexpected material for layer %d: %+v", layer, m)
		}
	}
	if m := OpaqueMaterial(tex); m.Transparent || m.SortOrder != 0 || m.Depth != DepthDefault {
		t.Fatalf("unexpected opaque material: %+v", m)
	}
}

func TestMemoryContent(t *testing.T) {
	c := NewMemoryContent(&Texture{Name: "atlas", Width: 256, Height: 256})
	tex, err := c.Texture("atlas")
	if err != nil || tex.Width != 256 {
		t.Fatalf("expected atlas texture, got %v, %v", tex, err)
	}
	if _, err := c.Texture("missing"); err == nil {
		t.Fatalf("expected error for missing texture")
	}
}
