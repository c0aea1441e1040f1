package assert

import "github.com/oomph-ac/voxel/oerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// InRange panics if v is not within [0, max).
func InRange(v, max int, axis string) {
	if v < 0 || v >= max {
		panic(oerror.New("%s coordinate %d out of bounds [0, %d)", axis, v, max))
	}
}
