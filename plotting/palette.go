package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// CategoricalPalette returns n visually distinct colors. Brewer qualitative
// palettes top out at 12 entries, so larger requests fall back to an evenly
// spaced rainbow.
func CategoricalPalette(name string, n int) (colors []color.Color, err error) {
	if n < 1 {
		return nil, fmt.Errorf("palette size must be >= 1, got %d", n)
	}
	if n <= 12 {
		// Brewer palettes have a minimum size of 3
		size := n
		if size < 3 {
			size = 3
		}
		pal, err := brewer.GetPalette(brewer.TypeQualitative, name, size)
		if err != nil {
			return nil, fmt.Errorf("unknown palette %q: %w", name, err)
		}
		return pal.Colors()[:n], nil
	}
	return palette.Rainbow(n, palette.Red, palette.Magenta, 1, 1, 1).Colors(), nil
}

// DivergingColorMap returns the blue-white-red colormap used for scalar
// fields, normalized to [min, max]
func DivergingColorMap(min, max float64) palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(min)
	cm.SetMax(max)
	return cm
}
