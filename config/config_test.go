package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mastercactapus/melt/effect"
	"github.com/mastercactapus/melt/melt"
	"github.com/mastercactapus/melt/mix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Options(t *testing.T) {
	opt, err := Default().Options()
	require.NoError(t, err)

	assert.Equal(t, 2, opt.Inlets)
	assert.Equal(t, melt.AllTools, opt.Tool)
	assert.Equal(t, melt.KindBlend, opt.Kind)
	assert.Equal(t, melt.UnitPercent, opt.Unit)
	assert.Equal(t, 0.0, opt.StartPercent)
	assert.Equal(t, 1.0, opt.EndPercent)
	assert.Equal(t, mix.Ratio{1, 0, 0, 0}, opt.Blend)
	assert.Empty(t, opt.Init)

	assert.Equal(t, effect.ModeNormal, opt.Effect.Mode)
	assert.Equal(t, effect.LoopLinear, opt.Effect.Loop)
	assert.Equal(t, 4, opt.Effect.Rate)
	assert.Equal(t, []float64{0.5, 1, 0.25, 0.75, 0.5, 0}, opt.Effect.Pattern)
	assert.Len(t, opt.Effect.Clamps, 4)
	assert.NotNil(t, opt.Effect.Source)
}

func TestRead(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
extruders: 3
tool: 2
kind: effect
unit: layer
layer_start: 10
layer_end: 90
rotation_order: CBA
loop: circular
effect_modifier: wood
rate_modifier: random
change_rate: 6
wood_min: 5
wood_max: 15
seed: 12
clamps:
  a: {start: 10, end: 90}
initial:
  enabled: true
  commands: ["M563 P0 D0:1:2 H1", "", "M568 P0 S1"]
`))
	require.NoError(t, err)
	assert.Equal(t, ToolFilter(2), cfg.Tool)
	assert.Equal(t, "duet", cfg.Firmware)

	opt, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 3, opt.Inlets)
	assert.Equal(t, 2, opt.Tool)
	assert.Equal(t, melt.KindEffect, opt.Kind)
	assert.Equal(t, melt.UnitLayer, opt.Unit)
	assert.Equal(t, 10, opt.StartLayer)
	assert.Equal(t, 90, opt.EndLayer)
	assert.Equal(t, "cba", opt.Effect.Rotation)
	assert.Equal(t, effect.LoopCircular, opt.Effect.Loop)
	assert.Equal(t, effect.ModeWood, opt.Effect.Mode)
	assert.Equal(t, effect.RateRandom, opt.Effect.RateMode)
	assert.InDelta(t, 0.05, opt.Effect.WoodMin, 1e-12)
	assert.InDelta(t, 0.15, opt.Effect.WoodMax, 1e-12)
	assert.Equal(t, effect.Clamp{Start: 0.1, End: 0.9}, opt.Effect.Clamps[0])
	assert.Equal(t, effect.Clamp{Start: 0, End: 1}, opt.Effect.Clamps[1])
	assert.Equal(t, []string{"M563 P0 D0:1:2 H1", "M568 P0 S1"}, opt.Init)

	// seeded sources repeat
	a, _ := cfg.Options()
	b, _ := cfg.Options()
	assert.Equal(t, a.Effect.Source.Float64(), b.Effect.Source.Float64())
}

func TestRead_ToolAll(t *testing.T) {
	cfg, err := Read(strings.NewReader("tool: all\n"))
	require.NoError(t, err)
	assert.Equal(t, ToolFilter(melt.AllTools), cfg.Tool)

	_, err = Read(strings.NewReader("tool: left\n"))
	assert.Error(t, err)
}

func TestRead_Gradients(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
kind: gradient
gradients:
  0:
    - {at: 0, mix: [100, 0]}
    - {at: 100, mix: [0, 100]}
`))
	require.NoError(t, err)

	opt, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, []mix.Stop{
		{Pos: 0, Mix: mix.Ratio{1, 0}},
		{Pos: 1, Mix: mix.Ratio{0, 1}},
	}, opt.Gradients[0])
}

func TestRead_Empty(t *testing.T) {
	cfg, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestRead_UnknownField(t *testing.T) {
	_, err := Read(strings.NewReader("extruderz: 3\n"))
	assert.Error(t, err)
}

func TestOptions_Errors(t *testing.T) {
	cfg := Default()
	cfg.Firmware = "marlin"
	cfg.Extruders = 6
	cfg.Kind = "sparkle"
	cfg.Unit = "inches"
	cfg.BlendValues = "100,abc"
	cfg.Effect = "glitter"
	cfg.Rate = "often"
	cfg.Loop = "spiral"
	cfg.Pattern = "0.5,,1"
	cfg.Clamps = map[string]Clamp{"z": {}}
	cfg.ChangeRate = -1

	err := cfg.Validate()
	require.Error(t, err)

	cerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Len(t, cerr.Problems, 11)
	assert.Contains(t, err.Error(), "blend_values: entry 2 ('abc') is not a number")
}

func TestOptions_GradientDuplicateStop(t *testing.T) {
	cfg := Default()
	cfg.Kind = "gradient"
	cfg.Gradients = map[int][]GradientStop{
		1: {{At: 50, Mix: []float64{100}}, {At: 50, Mix: []float64{0, 100}}},
	}
	assert.Error(t, cfg.Validate())

	cfg.Gradients = nil
	assert.Error(t, cfg.Validate())
}

func TestParseList(t *testing.T) {
	v, err := ParseList(" 100, 0 ,50.5")
	assert.NoError(t, err)
	assert.Equal(t, []float64{100, 0, 50.5}, v)

	v, err = ParseList("")
	assert.NoError(t, err)
	assert.Empty(t, v)

	_, err = ParseList("1,x")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "melt")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "melt.yaml")
	require.NoError(t, ioutil.WriteFile(name, []byte("extruders: 4\ndebug: true\n"), 0644))

	cfg, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Extruders)
	assert.True(t, cfg.Debug)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestToolFilter_String(t *testing.T) {
	assert.Equal(t, "all", ToolFilter(melt.AllTools).String())
	assert.Equal(t, "3", ToolFilter(3).String())

	f, err := ParseToolFilter("T1")
	assert.NoError(t, err)
	assert.Equal(t, ToolFilter(1), f)
}
