package oerror

import "fmt"

// VoxelError is raised for programming errors inside the engine, such as grid accesses outside of
// a chunk's bounds. It is usually delivered through a panic by the assert package.
type VoxelError struct {
	Err string
}

// New returns a VoxelError with the message formatted from the arguments passed.
func New(format string, args ...interface{}) *VoxelError {
	return &VoxelError{Err: fmt.Sprintf(format, args...)}
}

func (e *VoxelError) Error() string {
	return e.Err
}

// FromRecover converts a value returned by recover() into an error. Errors are returned as-is.
func FromRecover(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}
	return New("panic: %v", v)
}
