package gcode

import (
	"bytes"
	"io"
)

// Buffer turns a layer Reader back into a byte stream, writing a newline
// after every layer.
type Buffer struct {
	gr  Reader
	buf bytes.Buffer
	err error
}

var _ io.Reader = &Buffer{}

func NewBuffer(r Reader) *Buffer {
	return &Buffer{gr: r}
}

func (b *Buffer) Read(p []byte) (n int, err error) {
	var layer string
	for b.err == nil && b.buf.Len() < len(p) {
		layer, b.err = b.gr.Read()
		if b.err != nil {
			break
		}
		b.buf.WriteString(layer)
		b.buf.WriteByte('\n')
	}

	if b.buf.Len() > 0 {
		return b.buf.Read(p)
	}
	return 0, b.err
}
