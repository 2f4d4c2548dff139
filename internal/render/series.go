package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// XYPairs pairs x and y samples into plot points. The two slices must line
// up one to one; the plot library would only fail later and less clearly.
func XYPairs(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("pair series: %d x values against %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

// Line builds a coloured line plotter from paired samples.
func Line(x, y []float64, c color.Color) (*plotter.Line, error) {
	pts, err := XYPairs(x, y)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1)
	if c != nil {
		l.LineStyle.Color = c
	}
	return l, nil
}

// minMax returns the smallest and largest value of vs.
func minMax(vs []float64) (lo, hi float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
