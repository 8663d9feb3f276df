package export

import (
	"bytes"
	"sync"
)

// bufferPool provides pooled buffers for Serialize to reduce allocations.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(64 * 1024)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns a buffer to the pool after resetting it. Oversized buffers
// are dropped so one huge export does not pin memory.
func putBuffer(b *bytes.Buffer) {
	if b.Cap() > 8<<20 {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
