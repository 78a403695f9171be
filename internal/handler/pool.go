package handler

import (
	"bytes"
	"encoding/json"
	"sync"
)

// Response buffer sizing. Pet views fit the initial size; a month view or
// the full pokedex may grow past it, and buffers that grew beyond the cap
// are dropped instead of being pooled.
const (
	initialBufferBytes   = 4 << 10
	maxPooledBufferBytes = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferBytes))
	},
}

// encodeResponse renders payload into a pooled buffer. The caller must hand
// the buffer back with releaseBuffer.
func encodeResponse(payload interface{}) (*bytes.Buffer, error) {
	buf := responseBuffers.Get().(*bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		releaseBuffer(buf)
		return nil, err
	}
	return buf, nil
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferBytes {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
