package config

import (
	"strconv"
	"strings"

	"github.com/mastercactapus/melt/effect"
	"github.com/mastercactapus/melt/gcode"
	"github.com/mastercactapus/melt/melt"
	"github.com/mastercactapus/melt/mix"
	"github.com/pkg/errors"
)

var inletNames = "abcd"

// Validate checks every field, reporting all problems at once.
func (c Config) Validate() error {
	_, err := c.Options()
	return err
}

// Options converts the configuration into rewrite options. The effect
// random source is seeded from Seed, so each call starts a fresh sequence.
func (c Config) Options() (melt.Options, error) {
	e := &Error{}
	var opt melt.Options

	var err error
	opt.Firmware, err = gcode.ParseFirmware(c.Firmware)
	if err != nil {
		e.add("firmware", "%v", err)
	}

	opt.Inlets = c.Extruders
	if c.Extruders < melt.MinInlets || c.Extruders > melt.MaxInlets {
		e.add("extruders", "must be %d to %d, got %d", melt.MinInlets, melt.MaxInlets, c.Extruders)
	}
	opt.Tool = int(c.Tool)

	switch strings.ToLower(c.Kind) {
	case "blend":
		opt.Kind = melt.KindBlend
	case "effect":
		opt.Kind = melt.KindEffect
	case "gradient":
		opt.Kind = melt.KindGradient
	default:
		e.add("kind", "must be blend, effect or gradient, got '%s'", c.Kind)
	}

	switch strings.ToLower(c.Unit) {
	case "percent":
		opt.Unit = melt.UnitPercent
	case "layer", "layer_no":
		opt.Unit = melt.UnitLayer
	default:
		e.add("unit", "must be percent or layer, got '%s'", c.Unit)
	}
	opt.StartPercent = c.PercentStart / 100
	opt.EndPercent = c.PercentEnd / 100
	opt.StartLayer = c.LayerStart
	opt.EndLayer = c.LayerEnd

	blend, err := ParseList(c.BlendValues)
	if err != nil {
		e.add("blend_values", "%v", err)
	} else {
		opt.Blend = percent(blend)
		if opt.Kind == melt.KindBlend && len(blend) == 0 {
			e.add("blend_values", "needs at least one value")
		}
	}

	if len(c.Gradients) > 0 {
		opt.Gradients = make(map[int][]mix.Stop, len(c.Gradients))
	}
	for tool, stops := range c.Gradients {
		seen := make(map[float64]bool, len(stops))
		for _, s := range stops {
			if seen[s.At] {
				e.add("gradients", "tool %d has more than one stop at %v%%", tool, s.At)
			}
			seen[s.At] = true
			opt.Gradients[tool] = append(opt.Gradients[tool], mix.Stop{
				Pos: s.At / 100,
				Mix: percent(s.Mix),
			})
		}
	}
	if opt.Kind == melt.KindGradient && len(c.Gradients) == 0 {
		e.add("gradients", "gradient kind needs at least one tool")
	}

	opt.Effect = c.plan(e)

	if c.Initial.Enabled {
		for _, cmd := range c.Initial.Commands {
			if strings.TrimSpace(cmd) == "" {
				continue
			}
			opt.Init = append(opt.Init, cmd)
		}
	}
	opt.Debug = c.Debug

	if err := e.orNil(); err != nil {
		return melt.Options{}, err
	}
	return opt, nil
}

func (c Config) plan(e *Error) effect.Plan {
	p := effect.Plan{
		Inlets:     c.Extruders,
		Rotation:   strings.ToLower(c.Rotation),
		Rate:       c.ChangeRate,
		LerpOffset: c.LerpOffset,
		Slope:      c.Slope,
		Intercept:  c.Intercept,
		WoodMin:    c.WoodMin / 100,
		WoodMax:    c.WoodMax / 100,
		Source:     effect.NewSource(c.Seed),
	}

	var err error
	p.Mode, err = effect.ParseMode(c.Effect)
	if err != nil {
		e.add("effect_modifier", "%v", err)
	}
	p.RateMode, err = effect.ParseRate(c.Rate)
	if err != nil {
		e.add("rate_modifier", "%v", err)
	}
	p.Loop, err = effect.ParseLoop(c.Loop)
	if err != nil {
		e.add("loop", "%v", err)
	}
	if c.ChangeRate < 0 {
		e.add("change_rate", "must not be negative, got %d", c.ChangeRate)
	}
	if c.WoodMin > c.WoodMax {
		e.add("wood_min", "must not be above wood_max")
	}

	p.Pattern, err = ParseList(c.Pattern)
	if err != nil {
		e.add("pattern", "%v", err)
	} else if p.Mode == effect.ModePattern && len(p.Pattern) == 0 {
		e.add("pattern", "needs at least one value")
	}

	p.Clamps = make([]effect.Clamp, len(inletNames))
	for i := range p.Clamps {
		p.Clamps[i] = effect.Clamp{Start: 0, End: 1}
	}
	for name, cl := range c.Clamps {
		i := strings.Index(inletNames, strings.ToLower(name))
		if len(name) != 1 || i < 0 {
			e.add("clamps", "unknown extruder '%s'", name)
			continue
		}
		p.Clamps[i] = effect.Clamp{Start: cl.Start / 100, End: cl.End / 100}
	}
	return p
}

// ParseList parses a comma separated list of numbers. An empty string is an
// empty list.
func ParseList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	res := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Errorf("entry %d ('%s') is not a number", i+1, strings.TrimSpace(p))
		}
		res[i] = v
	}
	return res, nil
}

func percent(v []float64) mix.Ratio {
	r := make(mix.Ratio, len(v))
	for i, x := range v {
		r[i] = x / 100
	}
	return r
}
