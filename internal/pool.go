package internal

import "sync"

// BufferPool holds scratch byte slices used to encode chunk grids.
var BufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// GetBuffer returns an empty scratch buffer from the pool.
func GetBuffer() *[]byte {
	b := BufferPool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// PutBuffer returns a scratch buffer to the pool.
func PutBuffer(b *[]byte) {
	if b != nil {
		BufferPool.Put(b)
	}
}
