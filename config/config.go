package config

import (
	"strconv"
	"strings"

	"github.com/mastercactapus/melt/melt"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of a rewrite pass. Percentages are
// given in the 0 to 100 range.
type Config struct {
	Firmware  string     `yaml:"firmware" json:"firmware"`
	Extruders int        `yaml:"extruders" json:"extruders"`
	Tool      ToolFilter `yaml:"tool" json:"tool"`
	Kind      string     `yaml:"kind" json:"kind"`

	Unit         string  `yaml:"unit" json:"unit"`
	PercentStart float64 `yaml:"percent_start" json:"percent_start"`
	PercentEnd   float64 `yaml:"percent_end" json:"percent_end"`
	LayerStart   int     `yaml:"layer_start" json:"layer_start"`
	LayerEnd     int     `yaml:"layer_end" json:"layer_end"`

	BlendValues string `yaml:"blend_values" json:"blend_values"`

	Gradients map[int][]GradientStop `yaml:"gradients,omitempty" json:"gradients,omitempty"`

	Rotation   string           `yaml:"rotation_order" json:"rotation_order"`
	Clamps     map[string]Clamp `yaml:"clamps,omitempty" json:"clamps,omitempty"`
	ChangeRate int              `yaml:"change_rate" json:"change_rate"`
	Loop       string           `yaml:"loop" json:"loop"`
	Effect     string           `yaml:"effect_modifier" json:"effect_modifier"`
	Rate       string           `yaml:"rate_modifier" json:"rate_modifier"`
	LerpOffset float64          `yaml:"lerp_i" json:"lerp_i"`
	Slope      float64          `yaml:"slope_m" json:"slope_m"`
	Intercept  float64          `yaml:"slope_i" json:"slope_i"`
	Pattern    string           `yaml:"pattern" json:"pattern"`
	WoodMin    float64          `yaml:"wood_min" json:"wood_min"`
	WoodMax    float64          `yaml:"wood_max" json:"wood_max"`
	Seed       int64            `yaml:"seed" json:"seed"`

	Initial Initial `yaml:"initial" json:"initial"`

	// Colors are the filament colors of each inlet, used for previews.
	Colors []string `yaml:"colors,omitempty" json:"colors,omitempty"`

	Debug bool `yaml:"debug" json:"debug"`
}

// Clamp bounds an inlet's share of a changing effect, in percent.
type Clamp struct {
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
}

// GradientStop is a mix at a height given as a percentage of the print.
type GradientStop struct {
	At  float64   `yaml:"at" json:"at"`
	Mix []float64 `yaml:"mix" json:"mix"`
}

// Initial holds the setup commands written at the start of the print.
type Initial struct {
	Enabled  bool     `yaml:"enabled" json:"enabled"`
	Commands []string `yaml:"commands" json:"commands"`
}

// ToolFilter is either "all" or a single tool id.
type ToolFilter int

func (t ToolFilter) String() string {
	if int(t) == melt.AllTools {
		return "all"
	}
	return strconv.Itoa(int(t))
}

func ParseToolFilter(s string) (ToolFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" || s == "" {
		return ToolFilter(melt.AllTools), nil
	}
	s = strings.TrimPrefix(s, "t")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, newError("tool", "must be 'all' or a tool number, got '%s'", s)
	}
	return ToolFilter(n), nil
}

func (t *ToolFilter) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseToolFilter(n.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t ToolFilter) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t ToolFilter) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Default returns the configuration used for anything a file leaves unset.
func Default() Config {
	return Config{
		Firmware:     "duet",
		Extruders:    2,
		Tool:         ToolFilter(melt.AllTools),
		Kind:         "blend",
		Unit:         "percent",
		PercentStart: 0,
		PercentEnd:   100,
		LayerStart:   0,
		LayerEnd:     100000,
		BlendValues:  "100,0,0,0",
		Rotation:     "abcd",
		ChangeRate:   4,
		Loop:         "linear",
		Effect:       "normal",
		Rate:         "normal",
		LerpOffset:   0,
		Slope:        -1,
		Intercept:    1,
		Pattern:      "0.5,1,0.25,0.75,0.5,0",
		WoodMin:      0,
		WoodMax:      20,
		Initial: Initial{
			Commands: []string{
				"M563 P0 D0:1 H1",
				"G10 P0 X0 Y0 Z0",
				"G10 P0 R120 S220",
				"M568 P0 S1",
			},
		},
		Colors: []string{"#00ffff", "#ff00ff", "#ffff00", "#202020"},
	}
}
