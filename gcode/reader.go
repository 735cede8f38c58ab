package gcode

import "io"

// A Reader returns successive layer blocks: newline separated lines without
// a trailing newline. Read returns io.EOF when there are no more layers.
type Reader interface {
	Read() (string, error)
}

type LayersReader struct {
	Layers []string
	n      int
}

func (b *LayersReader) Read() (string, error) {
	if b.n == len(b.Layers) {
		return "", io.EOF
	}

	b.n++
	return b.Layers[b.n-1], nil
}
