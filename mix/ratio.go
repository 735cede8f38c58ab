package mix

// Ratio is the share of each inlet in a mix, indexed by inlet. Values
// are not required to sum to 1.
type Ratio []float64

// Unit returns an n-inlet ratio with all of the weight on inlet i.
func Unit(n, i int) Ratio {
	if n <= i {
		n = i + 1
	}
	r := make(Ratio, n)
	r[i] = 1
	return r
}

func (r Ratio) Clone() Ratio {
	if r == nil {
		return nil
	}
	c := make(Ratio, len(r))
	copy(c, r)
	return c
}

// Pad returns a copy of r extended with zeros to at least n inlets.
func (r Ratio) Pad(n int) Ratio {
	if n < len(r) {
		n = len(r)
	}
	c := make(Ratio, n)
	copy(c, r)
	return c
}

func (r Ratio) Equal(b Ratio) bool {
	if len(r) != len(b) {
		return false
	}
	for i := range r {
		if r[i] != b[i] {
			return false
		}
	}
	return true
}

// Add will add the target values to r, padding the shorter of the two.
func (r Ratio) Add(target Ratio) Ratio {
	n := len(r)
	if len(target) > n {
		n = len(target)
	}
	res := r.Pad(n)
	for i, v := range target {
		res[i] += v
	}
	return res
}

// Sub will subtract the target values from r, padding the shorter of the two.
func (r Ratio) Sub(target Ratio) Ratio {
	return r.Add(target.Mul(-1))
}

func (r Ratio) Mul(val float64) Ratio {
	res := make(Ratio, len(r))
	for i, v := range r {
		res[i] = v * val
	}
	return res
}

// Lerp returns r + t*(target-r) per inlet.
func (r Ratio) Lerp(target Ratio, t float64) Ratio {
	n := len(r)
	if len(target) > n {
		n = len(target)
	}
	a, b := r.Pad(n), target.Pad(n)
	res := make(Ratio, n)
	for i := range res {
		res[i] = a[i] + t*(b[i]-a[i])
	}
	return res
}

func (r Ratio) Sum() float64 {
	var s float64
	for _, v := range r {
		s += v
	}
	return s
}
