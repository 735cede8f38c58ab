package melt

// AffectedRange is the inclusive range of layers an effect is applied to.
type AffectedRange struct {
	Start, End int
}

// PercentRange computes the range from fractions (0 to 1) of total.
func PercentRange(total int, start, end float64) AffectedRange {
	return LayerRange(total, int(float64(total)*start), int(float64(total)*end))
}

// LayerRange clamps absolute layer numbers to [0, total]. Bounds given in
// the wrong order are swapped.
func LayerRange(total, start, end int) AffectedRange {
	if start > end {
		start, end = end, start
	}
	return AffectedRange{
		Start: clampInt(start, 0, total),
		End:   clampInt(end, 0, total),
	}
}

func (r AffectedRange) Contains(layer int) bool {
	return layer >= r.Start && layer <= r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		max = min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
