package mix

import (
	"math"
	"sort"
)

// Stop is a mix defined at a normalized vertical position (0 to 1).
type Stop struct {
	Pos float64
	Mix Ratio
}

// Table holds the mix stops of a single tool, ordered by position.
type Table struct {
	stops []Stop
}

func NewTable(stops ...Stop) *Table {
	t := &Table{}
	for _, s := range stops {
		t.Set(s.Pos, s.Mix)
	}
	return t
}

// Set defines the mix at pos, replacing any stop already there.
func (t *Table) Set(pos float64, mix Ratio) {
	i := sort.Search(len(t.stops), func(i int) bool { return t.stops[i].Pos >= pos })
	if i < len(t.stops) && t.stops[i].Pos == pos {
		t.stops[i].Mix = mix.Clone()
		return
	}
	t.stops = append(t.stops, Stop{})
	copy(t.stops[i+1:], t.stops[i:])
	t.stops[i] = Stop{Pos: pos, Mix: mix.Clone()}
}

func (t *Table) Len() int { return len(t.stops) }

func (t *Table) Stops() []Stop {
	res := make([]Stop, len(t.stops))
	for i, s := range t.stops {
		res[i] = Stop{Pos: s.Pos, Mix: s.Mix.Clone()}
	}
	return res
}

// Lookup returns the mix at pos, interpolating linearly between the closest
// stops on either side. Positions outside the stops get the nearest end
// stop. The result is not normalized.
func (t *Table) Lookup(pos float64) Ratio {
	switch len(t.stops) {
	case 0:
		return Ratio{1}
	case 1:
		return t.stops[0].Mix.Clone()
	}

	first, last := t.stops[0], t.stops[len(t.stops)-1]
	if math.IsNaN(pos) || pos <= first.Pos {
		return first.Mix.Clone()
	}
	if pos >= last.Pos {
		return last.Mix.Clone()
	}

	i := sort.Search(len(t.stops), func(i int) bool { return t.stops[i].Pos >= pos })
	hi := t.stops[i]
	if hi.Pos == pos {
		return hi.Mix.Clone()
	}
	lo := t.stops[i-1]

	span := hi.Pos - lo.Pos
	if span == 0 {
		return lo.Mix.Clone()
	}
	return lo.Mix.Lerp(hi.Mix, (pos-lo.Pos)/span)
}
