package effect

import (
	"math"
	"strings"

	"github.com/mastercactapus/melt/mix"
	"github.com/pkg/errors"
)

// Clamp bounds the share of a single inlet, as fractions.
type Clamp struct {
	Start, End float64
}

// Plan configures a changing effect.
type Plan struct {
	Inlets int

	// Rotation lists the inlets to shift through as letters, 'a' is inlet 0.
	Rotation string
	Clamps   []Clamp
	Loop     Loop

	Mode     Mode
	RateMode Rate
	Rate     int

	WoodMin, WoodMax float64
	LerpOffset       float64
	Slope, Intercept float64
	Pattern          []float64

	// Source is used by the random effects, NewSource(0) if nil.
	Source Source
}

// step is the position within the current rotation segment.
type step struct {
	x, xMax float64
}

type shiftFunc func(step) (float64, float64)
type rateFunc func() int

// Driver advances an effect as layers go by, producing a new mix at every
// change point.
type Driver struct {
	plan  Plan
	order []int

	shift shiftFunc
	rate  rateFunc

	start, end int
	next       int
	started    bool
	current    mix.Ratio
}

// NewDriver validates the plan and creates a driver. The layer range must be
// set with SetRange before the driver produces anything.
func NewDriver(p Plan) (*Driver, error) {
	if p.Inlets < 2 {
		return nil, errors.Errorf("effect needs at least 2 inlets, got %d", p.Inlets)
	}
	if p.Source == nil {
		p.Source = NewSource(0)
	}
	d := &Driver{
		plan:  p,
		order: rotation(p.Rotation, p.Inlets, p.Loop),
		end:   -1,
	}
	d.current = mix.Unit(p.Inlets, d.order[0])

	var err error
	d.shift, err = d.shifter()
	if err != nil {
		return nil, err
	}
	d.rate, err = d.rater()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// rotation maps letters to inlets, dropping anything out of range. Fewer
// than two usable letters falls back to "ab".
func rotation(s string, inlets int, loop Loop) []int {
	var order []int
	for _, c := range strings.ToLower(s) {
		i := int(c - 'a')
		if i < 0 || i >= inlets {
			continue
		}
		order = append(order, i)
	}
	if len(order) < 2 {
		order = []int{0, 1}
	}
	if loop == LoopCircular {
		order = append(order, order[0])
	}
	return order
}

func (d *Driver) shifter() (shiftFunc, error) {
	p := d.plan
	switch p.Mode {
	case ModeNormal:
		return func(s step) (float64, float64) {
			if s.xMax == 0 {
				return 1, 0
			}
			return StandardShift(s.x, s.xMax)
		}, nil
	case ModeWood:
		return func(step) (float64, float64) { return WoodShift(p.Source, p.WoodMin, p.WoodMax) }, nil
	case ModePattern:
		if len(p.Pattern) == 0 {
			return nil, errors.New("pattern effect needs at least one value")
		}
		pat := NewPattern(p.Pattern)
		return func(step) (float64, float64) { return PatternShift(pat) }, nil
	case ModeRandom:
		return func(step) (float64, float64) { return RandomShift(p.Source) }, nil
	case ModeLerp:
		return func(s step) (float64, float64) { return LerpShift(0, 1, s.x, p.LerpOffset) }, nil
	case ModeSlope:
		return func(s step) (float64, float64) { return SlopeShift(s.x, s.xMax, p.Slope, p.Intercept) }, nil
	case ModeEllipse:
		return func(s step) (float64, float64) {
			if s.xMax == 0 {
				return EllipseShift(0)
			}
			return EllipseShift(s.x / s.xMax)
		}, nil
	}
	return nil, errors.Wrapf(ErrUnknownMode, "effect modifier %d", p.Mode)
}

func (d *Driver) rater() (rateFunc, error) {
	p := d.plan
	mode := p.RateMode
	if p.Mode == ModeWood {
		mode = RateRandom
	}
	switch mode {
	case RateNormal:
		return func() int { return StandardRate(p.Rate) }, nil
	case RateRandom:
		return func() int { return RandomRate(p.Source, p.Rate, p.Rate*2) }, nil
	}
	return nil, errors.Wrapf(ErrUnknownMode, "rate modifier %d", p.RateMode)
}

// SetRange sets the inclusive layer range the effect runs over and restarts
// the effect.
func (d *Driver) SetRange(start, end int) {
	d.start, d.end = start, end
	d.started = false
	d.current = mix.Unit(d.plan.Inlets, d.order[0])
}

// Current returns the mix produced by the last change point.
func (d *Driver) Current() mix.Ratio { return d.current.Clone() }

// Advance moves the effect to layer. It returns the current mix and whether
// a new one was computed.
func (d *Driver) Advance(layer int) (mix.Ratio, bool) {
	if layer < d.start || layer > d.end {
		return d.Current(), false
	}
	if d.started && layer < d.next {
		return d.Current(), false
	}

	from, to, s := d.segment(layer)
	toShare, fromShare := d.shift(s)
	d.current = d.compose(from, to, toShare, fromShare)

	r := d.rate()
	if r < 1 {
		r = 1
	}
	d.next = layer + r
	d.started = true
	return d.Current(), true
}

// segment finds which pair of inlets layer blends between.
func (d *Driver) segment(layer int) (from, to int, s step) {
	n := len(d.order) - 1
	segLen := float64(d.end-d.start) / float64(n)
	off := float64(layer - d.start)

	k := 0
	if segLen > 0 {
		k = int(math.Floor(off / segLen))
	}
	if k >= n {
		k = n - 1
	}
	s.x = off - float64(k)*segLen
	s.xMax = segLen
	return d.order[k], d.order[k+1], s
}

func (d *Driver) compose(from, to int, toShare, fromShare float64) mix.Ratio {
	r := make(mix.Ratio, d.plan.Inlets)
	r[from] = d.clampInlet(from, fromShare)
	r[to] += d.clampInlet(to, toShare)
	return r
}

func (d *Driver) clampInlet(i int, v float64) float64 {
	c := Clamp{Start: 0, End: 1}
	if i < len(d.plan.Clamps) {
		c = d.plan.Clamps[i]
	}
	lo, hi := c.Start, c.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(v, lo, hi)
}
