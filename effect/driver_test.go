package effect

import (
	"testing"

	"github.com/mastercactapus/melt/mix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, p Plan, start, end int) *Driver {
	t.Helper()
	d, err := NewDriver(p)
	require.NoError(t, err)
	d.SetRange(start, end)
	return d
}

func TestDriver_Normal(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Rotation: "ab", Rate: 1}, 0, 4)

	r, ok := d.Advance(0)
	assert.True(t, ok)
	assert.Equal(t, mix.Ratio{1, 0}, r)

	r, ok = d.Advance(2)
	assert.True(t, ok)
	assert.Equal(t, mix.Ratio{0.5, 0.5}, r)

	r, ok = d.Advance(4)
	assert.True(t, ok)
	assert.Equal(t, mix.Ratio{0, 1}, r)

	// outside the range nothing changes
	r, ok = d.Advance(5)
	assert.False(t, ok)
	assert.Equal(t, mix.Ratio{0, 1}, r)
}

func TestDriver_Rate(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Rotation: "ab", Rate: 3}, 0, 12)

	var changes []int
	for l := 0; l <= 12; l++ {
		if _, ok := d.Advance(l); ok {
			changes = append(changes, l)
		}
	}
	assert.Equal(t, []int{0, 3, 6, 9, 12}, changes)
}

func TestDriver_ZeroRate(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Rate: 0}, 0, 2)

	for l := 0; l <= 2; l++ {
		_, ok := d.Advance(l)
		assert.True(t, ok, "%d", l)
	}
}

func TestDriver_Circular(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Rotation: "ab", Loop: LoopCircular, Rate: 1}, 0, 4)

	r, _ := d.Advance(2)
	assert.Equal(t, mix.Ratio{0, 1}, r)
	r, _ = d.Advance(3)
	assert.Equal(t, mix.Ratio{0.5, 0.5}, r)
	r, _ = d.Advance(4)
	assert.Equal(t, mix.Ratio{1, 0}, r)
}

func TestDriver_Rotation(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 3, Rotation: "ca", Rate: 1}, 10, 20)

	r, _ := d.Advance(10)
	assert.Equal(t, mix.Ratio{0, 0, 1}, r)
	r, _ = d.Advance(20)
	assert.Equal(t, mix.Ratio{1, 0, 0}, r)

	// letters beyond the inlet count are ignored, leaving "ab"
	assert.Equal(t, []int{0, 1}, rotation("ad", 2, LoopLinear))
	assert.Equal(t, []int{0, 1}, rotation("", 4, LoopLinear))
	assert.Equal(t, []int{2, 1, 0, 2}, rotation("CBA", 4, LoopCircular))
}

func TestDriver_Clamp(t *testing.T) {
	d := newDriver(t, Plan{
		Inlets:   2,
		Rotation: "ab",
		Rate:     1,
		Clamps:   []Clamp{{Start: 0.2, End: 0.9}, {Start: 0, End: 0.5}},
	}, 0, 4)

	r, _ := d.Advance(0)
	assert.Equal(t, mix.Ratio{0.9, 0}, r)
	r, _ = d.Advance(4)
	assert.Equal(t, mix.Ratio{0.2, 0.5}, r)
}

func TestDriver_Slope(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Mode: ModeSlope, Slope: -1, Intercept: 1, Rate: 1}, 0, 10)

	r, _ := d.Advance(0)
	assert.Equal(t, mix.Ratio{1, 0}, r)
	r, _ = d.Advance(5)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, []float64(r), 1e-9)
}

func TestDriver_Pattern(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Mode: ModePattern, Pattern: []float64{0.25, 1}, Rate: 1}, 0, 10)

	r, _ := d.Advance(0)
	assert.Equal(t, mix.Ratio{0, 1}, r)
	r, _ = d.Advance(1)
	assert.Equal(t, mix.Ratio{0.75, 0.25}, r)
	r, _ = d.Advance(2)
	assert.Equal(t, mix.Ratio{0, 1}, r)
}

func TestDriver_WoodSeeded(t *testing.T) {
	run := func() []mix.Ratio {
		d := newDriver(t, Plan{
			Inlets:  2,
			Mode:    ModeWood,
			WoodMin: 0.05,
			WoodMax: 0.2,
			Rate:    2,
			Source:  NewSource(99),
		}, 0, 50)
		var res []mix.Ratio
		for l := 0; l <= 50; l++ {
			if r, ok := d.Advance(l); ok {
				res = append(res, r)
			}
		}
		return res
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	require.NotEmpty(t, a)
	for _, r := range a {
		assert.InDelta(t, 1, r.Sum(), 1e-9)
	}
}

func TestDriver_Lerp(t *testing.T) {
	d := newDriver(t, Plan{Inlets: 2, Mode: ModeLerp, LerpOffset: 0.5, Rate: 1}, 0, 10)

	r, _ := d.Advance(7)
	assert.Equal(t, mix.Ratio{1, 0}, r)
}

func TestNewDriver_Errors(t *testing.T) {
	_, err := NewDriver(Plan{Inlets: 1})
	assert.Error(t, err)

	_, err = NewDriver(Plan{Inlets: 2, Mode: ModePattern})
	assert.Error(t, err)

	_, err = NewDriver(Plan{Inlets: 2, Mode: Mode(42)})
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = NewDriver(Plan{Inlets: 2, RateMode: Rate(9)})
	assert.ErrorIs(t, err, ErrUnknownMode)
}
