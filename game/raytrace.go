package game

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// March yields points along the ray from start in direction dir, step apart, until maxDist is
// passed. The first point yielded is start itself.
func March(start, dir mgl32.Vec3, step, maxDist float32) iter.Seq[mgl32.Vec3] {
	return func(yield func(mgl32.Vec3) bool) {
		if dir.LenSqr() <= 0 || step <= 0 {
			return
		}
		dir = dir.Normalize()

		steps := int(math32.Floor(maxDist / step))
		for i := 0; i <= steps; i++ {
			if !yield(start.Add(dir.Mul(float32(i) * step))) {
				return
			}
		}
	}
}

// HitNormal returns the normal of the voxel face a point lies closest to, given the offset of the
// point from the voxel's centre. The axis with the largest offset wins, preferring X over Y over Z
// when offsets are equal.
func HitNormal(offset mgl32.Vec3) mgl32.Vec3 {
	abs := AbsVec32(offset)
	switch {
	case abs.X() >= abs.Y() && abs.X() >= abs.Z():
		return mgl32.Vec3{sign(offset.X()), 0, 0}
	case abs.Y() >= abs.Z():
		return mgl32.Vec3{0, sign(offset.Y()), 0}
	default:
		return mgl32.Vec3{0, 0, sign(offset.Z())}
	}
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
