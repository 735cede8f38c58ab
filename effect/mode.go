package effect

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownMode is returned when a mode name is not recognized.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects the shift generator.
type Mode byte

const (
	ModeNormal Mode = iota
	ModeWood
	ModePattern
	ModeRandom
	ModeLerp
	ModeSlope
	ModeEllipse
)

var modeNames = []string{"normal", "wood", "pattern", "random", "lerp", "slope", "ellipse"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMode, "effect modifier '%s'", name)
}

// Rate selects the rate generator.
type Rate byte

const (
	RateNormal Rate = iota
	RateRandom
)

func (r Rate) String() string {
	switch r {
	case RateNormal:
		return "normal"
	case RateRandom:
		return "random"
	}
	return "unknown"
}

func ParseRate(name string) (Rate, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return RateNormal, nil
	case "random":
		return RateRandom, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "rate modifier '%s'", name)
}

// Loop selects whether the rotation returns to the first inlet.
type Loop byte

const (
	LoopLinear Loop = iota
	LoopCircular
)

func (l Loop) String() string {
	switch l {
	case LoopLinear:
		return "linear"
	case LoopCircular:
		return "circular"
	}
	return "unknown"
}

// ParseLoop accepts the names as well as the legacy "1" (linear) and "0"
// (circular) values.
func ParseLoop(name string) (Loop, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "1":
		return LoopLinear, nil
	case "circular", "0":
		return LoopCircular, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "loop type '%s'", name)
}
