package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
)

// Pure primaries for figures that pin one colour per scale.
var (
	Red  = color.RGBA{R: 0xff, A: 0xff}
	Blue = color.RGBA{B: 0xff, A: 0xff}
)

const paletteName = "Paired"

// SeriesColors returns n qualitative colours. Brewer palettes carry between
// three and twelve entries, so requests outside that range are clamped and
// colours repeat past twelve.
func SeriesColors(n int) ([]color.Color, error) {
	if n < 1 {
		return nil, nil
	}
	size := n
	if size < 3 {
		size = 3
	}
	if size > 12 {
		size = 12
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, paletteName, size)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", paletteName, err)
	}
	colors := pal.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out, nil
}

// TintY colours the y axis title and tick labels to mark which series the
// scale belongs to.
func TintY(ax *plot.Axis, c color.Color) {
	if c == nil {
		return
	}
	ax.Label.TextStyle.Color = c
	ax.Tick.Label.Color = c
}
