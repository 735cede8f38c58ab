package effect

import (
	"math/rand"
	"time"
)

// Source is the random number source used by the random effects.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. A zero seed picks one from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

func clamp(v, min, max float64) float64 {
	if v != v {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
