package effect

import "math"

// Rates give the number of layers until the next shift.

func StandardRate(rate int) int {
	return rate
}

// RandomRate picks a layer count in [min, max).
func RandomRate(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return int(math.Floor(uniform(src, float64(min), float64(max))))
}
