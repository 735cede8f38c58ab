package effect

// Pattern is a repeating sequence of shares. Each call to Next steps the
// cursor back by one, so a fresh pattern yields its last value first.
type Pattern struct {
	seq []float64
	cur int
}

func NewPattern(seq []float64) *Pattern {
	p := &Pattern{seq: make([]float64, len(seq))}
	copy(p.seq, seq)
	return p
}

func (p *Pattern) Len() int { return len(p.seq) }

// Next advances the pattern and returns the value rotated to the front.
func (p *Pattern) Next() float64 {
	if len(p.seq) == 0 {
		return 0
	}
	p.cur = (p.cur - 1 + len(p.seq)) % len(p.seq)
	return p.seq[p.cur]
}

// Values returns the sequence as currently rotated, front first.
func (p *Pattern) Values() []float64 {
	res := make([]float64, len(p.seq))
	for i := range res {
		res[i] = p.seq[(i+p.cur)%len(p.seq)]
	}
	return res
}
