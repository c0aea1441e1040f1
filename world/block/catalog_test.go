package block

import (
	"testing"

	"github.com/oomph-ac/voxel/oerror"
)

func TestTextureIndex(t *testing.T) {
	tests := []struct {
		id   ID
		face Face
		want int
	}{
		{Grass, FaceTop, 0},
		{Grass, FaceBottom, 2},
		{Grass, FaceLeft, 3},
		{Grass, FaceFront, 3},
		{Dirt, FaceTop, 2},
		{Stone, FaceRight, 1},
		{Sand, FaceBack, 18},
		{OakLog, FaceTop, 21},
		{OakLog, FaceBottom, 21},
		{OakLog, FaceFront, 20},
		{OakLeaves, FaceTop, 52},
		{OakPlanks, FaceTop, 4},
		{Water, FaceTop, 223},
		{Cobblestone, FaceLeft, 16},
		{Glass, FaceBack, 49},
		{TallGrass, FaceFront, 39},
		// Unknown ids fall back to the id itself.
		{ID(200), FaceTop, 200},
	}
	for _, tt := range tests {
		if got := TextureIndex(tt.id, tt.face); got != tt.want {
			t.Fatalf("TextureIndex(%s, %s) = %d, want %d", Name(tt.id), tt.face, got, tt.want)
		}
	}
}

func TestTextureIndexInvalidFacePanics(t *testing.T) {
	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("expected panic for invalid face")
		}
		if _, ok := v.(*oerror.VoxelError); !ok {
			t.Fatalf("expected *oerror.VoxelError, got %T", v)
		}
	}()
	TextureIndex(Stone, Face(17))
}

func TestFlags(t *testing.T) {
	for _, id := range []ID{OakLeaves, Water, Glass} {
		if !Transparent(id) {
			t.Fatalf("%s should be transparent", Name(id))
		}
	}
	for _, id := range []ID{Grass, Dirt, Stone, Sand, OakLog, OakPlanks, Cobblestone} {
		if Transparent(id) {
			t.Fatalf("%s should be opaque", Name(id))
		}
		if Layer(id) != -1 {
			t.Fatalf("%s should not have a transparent layer, got %d", Name(id), Layer(id))
		}
		if !Solid(id) {
			t.Fatalf("%s should be solid", Name(id))
		}
	}
	if Layer(OakLeaves) != 0 || Layer(Glass) != 0 || Layer(TallGrass) != 0 {
		t.Fatalf("cut-out blocks should share layer 0")
	}
	if Layer(Water) != 1 {
		t.Fatalf("water should be drawn in layer 1, got %d", Layer(Water))
	}
	if Solid(Air) || Solid(Water) || Solid(TallGrass) {
		t.Fatalf("air, water and tall grass should not be solid")
	}
	if !Billboard(TallGrass) || Billboard(Grass) {
		t.Fatalf("only tall grass should be a billboard")
	}
	if !Solid(ID(999)) || Transparent(ID(999)) {
		t.Fatalf("unknown blocks should be treated as opaque solids")
	}
}

func TestParseCatalogRejectsDuplicates(t *testing.T) {
	data := []byte("- id: 1\n  name: a\n- id: 1\n  name: b\n")
	if _, err := parseCatalog(data); err == nil {
		t.Fatalf("expected error for duplicate ids")
	}
}

func TestParseCatalogRejectsBadLayer(t *testing.T) {
	data := []byte("- id: 1\n  name: a\n  transparent: true\n  layer: 5\n")
	if _, err := parseCatalog(data); err == nil {
		t.Fatalf("expected error for out of range layer")
	}
}

func TestFaces(t *testing.T) {
	if len(Faces()) != 6 {
		t.Fatalf("expected 6 faces")
	}
	for _, f := range Faces() {
		if f.Opposite().Opposite() != f {
			t.Fatalf("opposite of opposite of %s is not itself", f)
		}
		if f.Normal().Add(f.Opposite().Normal()).Len() != 0 {
			t.Fatalf("%s and its opposite should have opposing normals", f)
		}
	}
	if !FaceBack.Mirrored() || !FaceLeft.Mirrored() || !FaceBottom.Mirrored() {
		t.Fatalf("back, left and bottom faces should be mirrored")
	}
	if FaceFront.Mirrored() || FaceRight.Mirrored() || FaceTop.Mirrored() {
		t.Fatalf("front, right and top faces should not be mirrored")
	}
	if FaceTop.Horizontal() || !FaceLeft.Horizontal() {
		t.Fatalf("unexpected horizontal flags")
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	if len(p) != 9 {
		t.Fatalf("expected 9 palette entries, got %d", len(p))
	}
	for _, typ := range p {
		if !Known(typ.ID) {
			t.Fatalf("palette entry %s has no catalog entry", typ.Name)
		}
	}
	p[0].ID = Air
	if Palette()[0].ID != Grass {
		t.Fatalf("palette should not be mutable through the returned slice")
	}
}
