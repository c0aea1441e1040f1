package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/render"
	"github.com/oomph-ac/voxel/world/block"
)

// quadIndices triangulate the four corners of a quad.
var quadIndices = [6]uint32{0, 2, 3, 0, 1, 2}

// corners holds the corners of each face of a unit cube centred on the origin. Mirrored faces list
// the same pattern as their opposite face and are reversed when emitted.
var corners = [6][4]mgl32.Vec3{
	block.FaceFront:  {{-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}, {.5, -.5, -.5}},
	block.FaceBack:   {{-.5, -.5, .5}, {-.5, .5, .5}, {.5, .5, .5}, {.5, -.5, .5}},
	block.FaceLeft:   {{-.5, -.5, -.5}, {-.5, .5, -.5}, {-.5, .5, .5}, {-.5, -.5, .5}},
	block.FaceRight:  {{.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}, {.5, -.5, .5}},
	block.FaceBottom: {{-.5, -.5, -.5}, {-.5, -.5, .5}, {.5, -.5, .5}, {.5, -.5, -.5}},
	block.FaceTop:    {{-.5, .5, -.5}, {-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}},
}

// billboardPlanes are the two diagonal planes of a billboard.
var billboardPlanes = [2][4]mgl32.Vec3{
	{{-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, .5}, {.5, -.5, .5}},
	{{-.5, -.5, .5}, {-.5, .5, .5}, {.5, .5, -.5}, {.5, -.5, -.5}},
}

// UVRect is the area of one atlas cell in texture coordinates, with V growing downwards.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// AtlasUV returns the texture coordinates of an atlas cell, for an atlas that is cells wide and tall.
func AtlasUV(index, cells int) UVRect {
	step := 1 / float32(cells)
	col, row := index%cells, index/cells
	return UVRect{
		U0: float32(col) * step,
		V0: float32(row) * step,
		U1: float32(col+1) * step,
		V1: float32(row+1) * step,
	}
}

// corner returns the UV of quad corner i: bottom left, top left, top right, bottom right.
func (r UVRect) corner(i int) mgl32.Vec2 {
	switch i {
	case 0:
		return mgl32.Vec2{r.U0, r.V1}
	case 1:
		return mgl32.Vec2{r.U0, r.V0}
	case 2:
		return mgl32.Vec2{r.U1, r.V0}
	default:
		return mgl32.Vec2{r.U1, r.V1}
	}
}

// Quad returns the vertices and indices of one face of a voxel centred at centre. The quad faces
// outwards along the face's normal. Invalid faces panic.
func Quad(face block.Face, centre mgl32.Vec3, size float32, uv UVRect, shade float32) ([4]render.Vertex, [6]uint32) {
	normal := face.Normal()
	return quad(corners[face], centre, size, normal, uv, shade, face.Mirrored())
}

// Billboard returns two crossed quads centred at centre, each visible from both sides.
func Billboard(centre mgl32.Vec3, size float32, uv UVRect, shade float32) ([16]render.Vertex, [24]uint32) {
	var (
		vertices [16]render.Vertex
		indices  [24]uint32
	)
	for p, plane := range billboardPlanes {
		normal := plane[2].Sub(plane[0]).Cross(plane[3].Sub(plane[0])).Normalize()
		for side, mirrored := range []bool{false, true} {
			n := normal
			if mirrored {
				n = n.Mul(-1)
			}
			v, idx := quad(plane, centre, size, n, uv, shade, mirrored)

			q := p*2 + side
			copy(vertices[q*4:], v[:])
			for i, index := range idx {
				indices[q*6+i] = index + uint32(q*4)
			}
		}
	}
	return vertices, indices
}

func quad(c [4]mgl32.Vec3, centre mgl32.Vec3, size float32, normal mgl32.Vec3, uv UVRect, shade float32, mirrored bool) ([4]render.Vertex, [6]uint32) {
	var vertices [4]render.Vertex
	color := mgl32.Vec4{shade, shade, shade, 1}
	for i := range vertices {
		src := i
		if mirrored {
			src = 3 - i
		}
		vertices[i] = render.Vertex{
			Position: centre.Add(c[src].Mul(size)),
			Normal:   normal,
			UV:       uv.corner(src),
			Color:    color,
		}
	}
	return vertices, quadIndices
}
