package effect

import "math"

// Shifts return the new share of the inlet being blended towards and, as the
// second value, the share left for the inlet being blended away from.

// StandardShift moves numerator/denominator of the way to the next inlet.
// A zero denominator gives NaN for both values, callers must guard it.
func StandardShift(numerator, denominator float64) (float64, float64) {
	if denominator == 0 {
		return math.NaN(), math.NaN()
	}
	a := numerator / denominator
	return a, 1 - a
}

// WoodShift picks a random share within [min, max].
func WoodShift(src Source, min, max float64) (float64, float64) {
	v := uniform(src, min, max)
	return v, 1 - v
}

// PatternShift uses the next value of a repeating pattern.
func PatternShift(p *Pattern) (float64, float64) {
	v := p.Next()
	return v, 1 - v
}

func RandomShift(src Source) (float64, float64) {
	v := src.Float64()
	return v, 1 - v
}

// SlopeShift follows y = m*x/xMax + b, clamped to [0, 1].
func SlopeShift(x, xMax, m, b float64) (float64, float64) {
	y := clamp(m*x/xMax+b, 0, 1)
	return 1 - y, y
}

// EllipseShift follows the upper half of an ellipse: the previous inlet
// holds most of the mix early and drops off quickly near x = 1.
func EllipseShift(x float64) (float64, float64) {
	y := clamp(4-(0.12*x*x+1.12*x+2.78), 0, 1)
	y = clamp(math.Sqrt(y), 0, 1)
	return 1 - y, y
}

// LerpShift always keeps the full mix on the previous inlet. The inputs are
// accepted for compatibility and ignored.
func LerpShift(v0, v1, t, i float64) (float64, float64) {
	return 0, 1
}
