// Package preview renders an inlet mix as the color the printed part would
// roughly show.
package preview

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mastercactapus/melt/mix"
	"github.com/pkg/errors"
)

// Palette holds the filament color loaded in each inlet.
type Palette []colorful.Color

func ParsePalette(hex []string) (Palette, error) {
	p := make(Palette, len(hex))
	for i, s := range hex {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.Wrapf(err, "inlet %d color", i)
		}
		p[i] = c
	}
	return p, nil
}

func MustParsePalette(hex ...string) Palette {
	p, err := ParsePalette(hex)
	if err != nil {
		panic(err)
	}
	return p
}

// Blend averages the inlet colors in linear RGB, weighted by the mix. Mixes
// that don't total 1 are normalized first; inlets without a color count as
// black.
func (p Palette) Blend(r mix.Ratio) colorful.Color {
	var total, lr, lg, lb float64
	for i, w := range r {
		if w <= 0 {
			continue
		}
		total += w
		if i >= len(p) {
			continue
		}
		cr, cg, cb := p[i].LinearRgb()
		lr += cr * w
		lg += cg * w
		lb += cb * w
	}
	if total == 0 {
		return colorful.Color{}
	}
	return colorful.LinearRgb(lr/total, lg/total, lb/total).Clamped()
}

// Hex is Blend formatted as "#rrggbb".
func (p Palette) Hex(r mix.Ratio) string {
	return p.Blend(r).Hex()
}
