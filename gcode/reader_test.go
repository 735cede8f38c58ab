package gcode

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayersReader(t *testing.T) {
	gr := &LayersReader{Layers: []string{"G1 X1\nG1 X2", ";LAYER:0\nM2"}}

	l, err := gr.Read()
	assert.NoError(t, err)
	assert.Equal(t, "G1 X1\nG1 X2", l)

	l, err = gr.Read()
	assert.NoError(t, err)
	assert.Equal(t, ";LAYER:0\nM2", l)

	l, err = gr.Read()
	assert.Error(t, err)
	assert.Equal(t, io.EOF, err)
	assert.Empty(t, l)
}
