package block

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxel/assert"
)

// Face is one of the six axis-aligned sides of a voxel.
type Face uint8

const (
	// FaceFront is the side facing -Z.
	FaceFront Face = iota
	// FaceBack is the side facing +Z.
	FaceBack
	// FaceLeft is the side facing -X.
	FaceLeft
	// FaceRight is the side facing +X.
	FaceRight
	// FaceBottom is the side facing -Y.
	FaceBottom
	// FaceTop is the side facing +Y.
	FaceTop

	faceCount
)

type faceData struct {
	name   string
	offset [3]int
	cube   cube.Face
	// mirrored faces emit their quad corners in reverse order.
	mirrored bool
}

var faces = [faceCount]faceData{
	FaceFront:  {name: "front", offset: [3]int{0, 0, -1}, cube: cube.FaceNorth},
	FaceBack:   {name: "back", offset: [3]int{0, 0, 1}, cube: cube.FaceSouth, mirrored: true},
	FaceLeft:   {name: "left", offset: [3]int{-1, 0, 0}, cube: cube.FaceWest, mirrored: true},
	FaceRight:  {name: "right", offset: [3]int{1, 0, 0}, cube: cube.FaceEast},
	FaceBottom: {name: "bottom", offset: [3]int{0, -1, 0}, cube: cube.FaceDown, mirrored: true},
	FaceTop:    {name: "top", offset: [3]int{0, 1, 0}, cube: cube.FaceUp},
}

// Faces returns all six faces, in declaration order.
func Faces() []Face {
	return []Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceBottom, FaceTop}
}

// HorizontalFaces returns the four faces that can point into a neighbouring chunk.
func HorizontalFaces() []Face {
	return []Face{FaceFront, FaceBack, FaceLeft, FaceRight}
}

// Valid returns true if the face is one of the six known faces.
func (f Face) Valid() bool {
	return f < faceCount
}

func (f Face) data() faceData {
	assert.IsTrue(f.Valid(), "invalid face %d", uint8(f))
	return faces[f]
}

// Offset returns the integer step from a voxel to its neighbour across this face.
func (f Face) Offset() (dx, dy, dz int) {
	o := f.data().offset
	return o[0], o[1], o[2]
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() mgl32.Vec3 {
	o := f.data().offset
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}

// Mirrored returns true for faces whose quad is wound in reverse.
func (f Face) Mirrored() bool {
	return f.data().mirrored
}

// Horizontal returns true if the face points along the X or Z axis.
func (f Face) Horizontal() bool {
	return f.data().offset[1] == 0
}

// Opposite returns the face pointing the other way.
func (f Face) Opposite() Face {
	return f ^ 1
}

// Cube returns the float32-cube face pointing in the same direction.
func (f Face) Cube() cube.Face {
	return f.data().cube
}

// Side returns the position next to pos across this face.
func (f Face) Side(pos cube.Pos) cube.Pos {
	return pos.Side(f.Cube())
}

func (f Face) String() string {
	if !f.Valid() {
		return "invalid"
	}
	return faces[f].name
}

// FaceFromNormal returns the face whose outward normal is the unit axis vector passed.
func FaceFromNormal(n mgl32.Vec3) (Face, bool) {
	for f := FaceFront; f < faceCount; f++ {
		if faces[f].offset == [3]int{int(n.X()), int(n.Y()), int(n.Z())} {
			return f, true
		}
	}
	return 0, false
}
