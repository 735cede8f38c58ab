package gcode

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Firmware selects the dialect used for generated commands.
type Firmware byte

const (
	FirmwareDuet Firmware = iota
)

func ParseFirmware(name string) (Firmware, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "duet":
		return FirmwareDuet, nil
	}
	return 0, errors.Errorf("unsupported firmware '%s'", name)
}

func (f Firmware) String() string {
	switch f {
	case FirmwareDuet:
		return "duet"
	}
	return "unknown"
}

// MixCommand renders the command setting the per-inlet extrusion ratios of
// a tool, e.g. "M567 P0 E0.75:0.25".
func (f Firmware) MixCommand(tool int, ratio []float64) string {
	parts := make([]string, len(ratio))
	for i, v := range ratio {
		parts[i] = FormatRatio(v)
	}
	if len(parts) == 0 {
		parts = []string{"0"}
	}
	return "M567 " + Word{W: 'P', Arg: float64(tool)}.String() + " E" + strings.Join(parts, ":")
}

// FormatRatio renders v truncated to two decimal places. Values that can't
// be rendered as a non-negative number become "0".
func FormatRatio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return "0"
	}
	// nudge so that values like 0.29 (0.28999...) keep their last digit
	v = math.Trunc(v*100+1e-9) / 100
	return formatFloat(v, 2)
}
