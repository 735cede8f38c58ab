package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// Block is the list of words found in the command part of a single line.
type Block []Word

var rxWord = regexp.MustCompile(`([A-Z])([-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))`)

// Words splits the command part of line (everything before the first ';')
// into words. Lowercase letters and malformed words are skipped.
func Words(line string) Block {
	cmd := stripComment(line)
	m := rxWord.FindAllStringSubmatch(cmd, -1)
	if len(m) == 0 {
		return nil
	}
	b := make(Block, 0, len(m))
	for _, sub := range m {
		v, err := strconv.ParseFloat(sub[2], 64)
		if err != nil {
			continue
		}
		b = append(b, Word{W: sub[1][0], Arg: v})
	}
	return b
}

func stripComment(line string) string {
	return strings.SplitN(line, ";", 2)[0]
}

// Arg returns the argument of the first word with letter w.
func (b Block) Arg(w byte) (bool, float64) {
	for _, g := range b {
		if g.W == w {
			return true, g.Arg
		}
	}
	return false, 0
}

func (b Block) Has(w byte) bool {
	ok, _ := b.Arg(w)
	return ok
}

func (b Block) String() string {
	s := make([]string, len(b))
	for i, g := range b {
		s[i] = g.String()
	}
	return strings.Join(s, " ")
}
