package melt

import (
	"io"
	"strconv"
	"strings"

	"github.com/mastercactapus/melt/effect"
	"github.com/mastercactapus/melt/gcode"
	"github.com/mastercactapus/melt/mix"
)

// Config configures a Rewriter reading layers from Reader.
type Config struct {
	Options

	// Reader supplies layer blocks to Read. It may be nil when layers are
	// fed through Layer directly.
	Reader gcode.Reader
}

// Rewriter inserts mix commands into a stream of layer blocks. A Rewriter
// carries state from one layer to the next, so all layers of a print must
// go through the same Rewriter in order.
type Rewriter struct {
	opt Options
	gr  gcode.Reader

	vm     *gcode.VM
	tables *mix.Registry
	driver *effect.Driver

	total     int
	haveTotal bool
	rng       AffectedRange
	layer     int

	last  gcode.State
	dirty bool

	wroteInit bool
}

var _ gcode.Reader = &Rewriter{}

// New validates the configuration and creates a Rewriter. Configuration
// problems are reported here, before any layer is processed.
func New(cfg Config) (*Rewriter, error) {
	err := cfg.Options.Validate()
	if err != nil {
		return nil, err
	}

	w := &Rewriter{
		opt:    cfg.Options,
		gr:     cfg.Reader,
		vm:     gcode.NewVM(),
		tables: mix.NewRegistry(cfg.Inlets),
		layer:  -1,
	}
	w.last = w.vm.State()

	switch w.opt.Kind {
	case KindBlend:
		w.setTarget(w.opt.Blend.Pad(w.opt.Inlets)[:w.opt.Inlets])
	case KindGradient:
		for tool, stops := range w.opt.Gradients {
			w.tables.Set(tool, mix.NewTable(stops...))
		}
	case KindEffect:
		plan := w.opt.Effect
		plan.Inlets = w.opt.Inlets
		w.driver, err = effect.NewDriver(plan)
		if err != nil {
			return nil, err
		}
		w.setTarget(w.driver.Current())
	}

	return w, nil
}

// Process runs a whole print through a new Rewriter.
func Process(opt Options, layers []string) ([]string, error) {
	w, err := New(Config{Options: opt})
	if err != nil {
		return nil, err
	}
	res := make([]string, len(layers))
	for i, l := range layers {
		res[i] = w.Layer(l)
	}
	return res, nil
}

// State returns the tracked stream state.
func (w *Rewriter) State() gcode.State { return w.vm.State() }

// Range returns the affected range and whether the layer count is known yet.
func (w *Rewriter) Range() (AffectedRange, bool) { return w.rng, w.haveTotal }

func (w *Rewriter) Read() (string, error) {
	if w.gr == nil {
		return "", io.EOF
	}
	l, err := w.gr.Read()
	if err != nil {
		return "", err
	}
	return w.Layer(l), nil
}

// Layer rewrites a single layer block.
func (w *Rewriter) Layer(block string) string {
	lines := strings.Split(block, "\n")
	out := make([]string, 0, len(lines)+len(w.opt.Init)+1)
	if !w.wroteInit {
		w.wroteInit = true
		out = append(out, w.opt.Init...)
	}

	for _, line := range lines {
		if total, ok := gcode.LayerCount(line); ok {
			w.setTotal(total)
			out = append(out, line)
			continue
		}
		if n, ok := gcode.LayerIndex(line); ok {
			w.enterLayer(n)
		}

		l := w.vm.Run(line)
		if !w.active() {
			out = append(out, line)
			continue
		}

		st := w.vm.State()
		if l.Extrude && (w.dirty || st != w.last) && w.targets(st.Tool) {
			out = append(out, w.insert(st))
			w.last = st
			w.dirty = false
		} else if w.opt.Debug {
			line = annotate(line, st)
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func (w *Rewriter) setTotal(total int) {
	w.total = total
	w.haveTotal = total > 0
	w.rng = w.opt.affectedRange(total)
	if w.driver != nil {
		w.driver.SetRange(w.rng.Start, w.rng.End)
	}
}

func (w *Rewriter) enterLayer(n int) {
	w.layer = n
	if w.driver == nil || !w.active() {
		return
	}
	r, changed := w.driver.Advance(n)
	if changed {
		w.setTarget(r)
		w.dirty = true
	}
}

func (w *Rewriter) active() bool {
	return w.haveTotal && w.rng.Contains(w.layer)
}

func (w *Rewriter) targets(tool int) bool {
	return w.opt.Tool == AllTools || w.opt.Tool == tool
}

func (w *Rewriter) setTarget(r mix.Ratio) {
	if w.opt.Tool == AllTools {
		w.tables.SetAll(r)
		return
	}
	w.tables.Set(w.opt.Tool, mix.NewTable(mix.Stop{Pos: 0, Mix: r}))
}

func (w *Rewriter) insert(st gcode.State) string {
	r := w.tables.Lookup(st.Tool, st.Z/float64(w.total))
	cmd := w.opt.Firmware.MixCommand(st.Tool, r)
	if w.opt.Observer != nil {
		w.opt.Observer(Insertion{
			Layer:   w.layer,
			Tool:    st.Tool,
			Z:       st.Z,
			Mix:     r,
			Command: cmd,
		})
	}
	return cmd
}

func annotate(line string, st gcode.State) string {
	if strings.ContainsRune(line, ';') || strings.TrimSpace(line) == "" {
		return line
	}
	return line + " ;tool=" + strconv.Itoa(st.Tool) +
		" z=" + strconv.FormatFloat(st.Z, 'f', -1, 64) +
		" relative=" + strconv.FormatBool(st.Relative)
}
