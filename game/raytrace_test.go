package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMarch(t *testing.T) {
	var points []mgl32.Vec3
	for p := range March(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 5}, 0.5, 2) {
		points = append(points, p)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}
	if points[0] != (mgl32.Vec3{1, 2, 3}) || points[4] != (mgl32.Vec3{1, 2, 5}) {
		t.Fatalf("unexpected points %v", points)
	}

	for range March(mgl32.Vec3{}, mgl32.Vec3{}, 0.1, 10) {
		t.Fatalf("a zero direction should not yield points")
	}
}

func TestHitNormal(t *testing.T) {
	tests := []struct {
		offset, want mgl32.Vec3
	}{
		{mgl32.Vec3{0.5, 0.1, -0.2}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{-0.1, -0.49, 0.3}, mgl32.Vec3{0, -1, 0}},
		{mgl32.Vec3{0.1, 0.2, -0.5}, mgl32.Vec3{0, 0, -1}},
		// Ties prefer X, then Y.
		{mgl32.Vec3{-0.5, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}},
		{mgl32.Vec3{0.1, 0.4, -0.4}, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		if got := HitNormal(tt.offset); got != tt.want {
			t.Fatalf("HitNormal(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestLookRotationMatchesDirection(t *testing.T) {
	for _, yp := range [][2]float32{{0, 0}, {90, 0}, {-45, 30}, {180, -60}, {12.5, 89}} {
		want := DirectionVector(yp[0], yp[1])
		got := LookRotation(yp[0], yp[1]).Rotate(mgl32.Vec3{0, 0, -1})
		if !got.ApproxEqualThreshold(want, 1e-5) {
			t.Fatalf("yaw %v pitch %v: rotation faces %v, direction is %v", yp[0], yp[1], got, want)
		}
	}
}
