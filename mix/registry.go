package mix

import "sort"

// Registry holds the mix table of every tool seen during a pass. Tools are
// given a default table on first reference.
type Registry struct {
	inlets int
	def    Ratio
	tables map[int]*Table
}

// NewRegistry creates a registry whose default mix puts all of the weight
// on inlet 0.
func NewRegistry(inlets int) *Registry {
	if inlets < 1 {
		inlets = 1
	}
	return &Registry{
		inlets: inlets,
		def:    Unit(inlets, 0),
		tables: make(map[int]*Table),
	}
}

func (r *Registry) Inlets() int { return r.inlets }

// Get returns the table for tool, creating the default one if needed.
func (r *Registry) Get(tool int) *Table {
	t, ok := r.tables[tool]
	if !ok {
		t = NewTable(Stop{Pos: 0, Mix: r.def})
		r.tables[tool] = t
	}
	return t
}

func (r *Registry) Set(tool int, t *Table) {
	r.tables[tool] = t
}

// SetAll replaces the default mix and the table of every known tool with a
// single stop holding mix.
func (r *Registry) SetAll(mix Ratio) {
	r.def = mix.Pad(r.inlets)
	for id := range r.tables {
		r.tables[id] = NewTable(Stop{Pos: 0, Mix: r.def})
	}
}

func (r *Registry) Lookup(tool int, pos float64) Ratio {
	return r.Get(tool).Lookup(pos)
}

// Tools returns the ids of all known tools in ascending order.
func (r *Registry) Tools() []int {
	ids := make([]int, 0, len(r.tables))
	for id := range r.tables {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
