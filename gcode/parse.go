package gcode

import (
	"bytes"
	"io"
)

// Parse splits data into layer blocks.
func Parse(data string) ([]string, error) {
	r := NewParser(bytes.NewBufferString(data))
	var layers []string
	for {
		l, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func MustParse(data string) []string {
	l, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return l
}
