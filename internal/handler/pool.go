package handler

import (
	"bytes"
	"sync"
)

const (
	// a 31-day scenario table encodes to a few KiB
	initialBufferSize = 4 << 10
	// history pages can embed many scenario tables; larger buffers are not pooled
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
