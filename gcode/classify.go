package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// Mode is the coordinate mode selected by a line, if any.
type Mode byte

const (
	ModeNone Mode = iota
	ModeAbsolute
	ModeRelative
)

func (m Mode) String() string {
	switch m {
	case ModeAbsolute:
		return "absolute"
	case ModeRelative:
		return "relative"
	}
	return "none"
}

// Line is the classification of a single line of G-code.
type Line struct {
	HasTool bool
	Tool    int

	Mode Mode

	HasZ bool
	Z    float64

	Extrude bool
}

// Changes reports whether applying the line could change stream state.
func (l Line) Changes() bool {
	return l.HasTool || l.Mode != ModeNone || l.HasZ
}

var (
	rxTool     = regexp.MustCompile(`^T(\d+)\b`)
	rxAbsolute = regexp.MustCompile(`^G90\b`)
	rxRelative = regexp.MustCompile(`^G91\b`)
	rxMove     = regexp.MustCompile(`^G0?[01]([^0-9.]|$)`)
	rxExtrude  = regexp.MustCompile(`^G0?[0-3]([^0-9.]|$)`)

	rxLayerCount = regexp.MustCompile(`;LAYER_COUNT:\s*(\d+)`)
	rxLayer      = regexp.MustCompile(`^\s*;LAYER:\s*(-?\d+)`)
)

// Classify matches line against the tool-select, coordinate-mode,
// vertical-move and extrusion-move patterns. Only the first command token
// after leading whitespace is considered.
func Classify(line string) Line {
	var l Line
	s := strings.TrimLeft(stripComment(line), " \t")
	if s == "" {
		return l
	}

	if m := rxTool.FindStringSubmatch(s); m != nil {
		id, err := strconv.Atoi(m[1])
		if err == nil {
			l.HasTool = true
			l.Tool = id
		}
		return l
	}
	if rxAbsolute.MatchString(s) {
		l.Mode = ModeAbsolute
		return l
	}
	if rxRelative.MatchString(s) {
		l.Mode = ModeRelative
		return l
	}

	isMove := rxMove.MatchString(s)
	isExtrude := rxExtrude.MatchString(s)
	if !isMove && !isExtrude {
		return l
	}
	b := Words(s)
	if isMove {
		l.HasZ, l.Z = b.Arg('Z')
	}
	if isExtrude {
		l.Extrude = b.Has('E')
	}
	return l
}

// LayerCount parses the slicer's total-layer marker.
func LayerCount(line string) (int, bool) {
	m := rxLayerCount.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// LayerIndex parses a ";LAYER:n" marker line.
func LayerIndex(line string) (int, bool) {
	m := rxLayer.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsLayerMarker reports whether line starts a new layer block.
func IsLayerMarker(line string) bool {
	_, ok := LayerIndex(line)
	return ok
}
