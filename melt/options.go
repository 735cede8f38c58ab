package melt

import (
	"github.com/mastercactapus/melt/effect"
	"github.com/mastercactapus/melt/gcode"
	"github.com/mastercactapus/melt/mix"
	"github.com/pkg/errors"
)

// AllTools applies the mix to every tool.
const AllTools = -1

const (
	MinInlets = 2
	MaxInlets = 4
)

// Kind selects how tool mixes are defined.
type Kind byte

const (
	// KindBlend applies a fixed mix.
	KindBlend Kind = iota
	// KindEffect applies a changing effect.
	KindEffect
	// KindGradient uses per-tool mix stops.
	KindGradient
)

func (k Kind) String() string {
	switch k {
	case KindBlend:
		return "blend"
	case KindEffect:
		return "effect"
	case KindGradient:
		return "gradient"
	}
	return "unknown"
}

// Unit selects how the range bounds are expressed.
type Unit byte

const (
	UnitPercent Unit = iota
	UnitLayer
)

// Insertion describes a mix command added to the output.
type Insertion struct {
	Layer   int
	Tool    int
	Z       float64
	Mix     mix.Ratio
	Command string
}

// Options configure a rewrite pass.
type Options struct {
	Firmware gcode.Firmware
	Inlets   int
	Tool     int
	Kind     Kind

	Unit                     Unit
	StartPercent, EndPercent float64
	StartLayer, EndLayer     int

	// Blend is the fixed mix used by KindBlend.
	Blend mix.Ratio
	// Gradients holds the stops of each tool for KindGradient.
	Gradients map[int][]mix.Stop
	// Effect configures KindEffect.
	Effect effect.Plan

	// Init is written once before the first layer.
	Init []string

	// Debug annotates lines with the tracked state.
	Debug bool

	// Observer, if set, is called for every inserted mix command.
	Observer func(Insertion)
}

func (o Options) Validate() error {
	if o.Inlets < MinInlets || o.Inlets > MaxInlets {
		return errors.Errorf("extruder count must be %d to %d, got %d", MinInlets, MaxInlets, o.Inlets)
	}
	if o.Tool < AllTools {
		return errors.Errorf("invalid tool %d", o.Tool)
	}
	switch o.Kind {
	case KindBlend:
		if len(o.Blend) == 0 {
			return errors.New("blend needs at least one value")
		}
	case KindEffect, KindGradient:
	default:
		return errors.Errorf("unknown kind %d", o.Kind)
	}
	switch o.Unit {
	case UnitPercent, UnitLayer:
	default:
		return errors.Errorf("unknown unit %d", o.Unit)
	}
	return nil
}

// affectedRange computes the range of layers to apply mixes to.
func (o Options) affectedRange(total int) AffectedRange {
	if o.Unit == UnitLayer {
		return LayerRange(total, o.StartLayer, o.EndLayer)
	}
	return PercentRange(total, o.StartPercent, o.EndPercent)
}
