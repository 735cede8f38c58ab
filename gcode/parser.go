package gcode

import (
	"bufio"
	"io"
	"strings"
)

// Parser splits a G-code stream into layer blocks. A new block starts at
// every ";LAYER:" marker; everything before the first marker is the header
// block.
type Parser struct {
	br *bufio.Reader

	next    string
	hasNext bool
	err     error
}

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

func (p *Parser) Read() (string, error) {
	var lines []string
	if p.hasNext {
		lines = append(lines, p.next)
		p.hasNext = false
	}

	for p.err == nil {
		s, err := p.br.ReadString('\n')
		if err != nil {
			p.err = err
			if s == "" {
				break
			}
		}
		s = strings.TrimSuffix(s, "\n")

		if len(lines) > 0 && IsLayerMarker(s) {
			p.next = s
			p.hasNext = true
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, s)
	}

	if len(lines) > 0 {
		return strings.Join(lines, "\n"), nil
	}
	return "", p.err
}
