package dualaxis

import (
	"fmt"

	"coplot/internal/dataset"
	"coplot/internal/figure"
	"coplot/internal/render"
)

// Default right-hand scale, sized for the bounded sample series.
const (
	DefaultRightMin = -1
	DefaultRightMax = 1
)

// Builder composes the overlay from a table with one x column and exactly
// two series. The left scale follows its data; the right scale is fixed.
type Builder struct {
	RightMin, RightMax float64
}

// New returns a builder with the sample right-hand scale.
func New() *Builder {
	return &Builder{RightMin: DefaultRightMin, RightMax: DefaultRightMax}
}

func (b *Builder) Info() figure.Info {
	return figure.Info{
		Name:        "dualaxis",
		Title:       "Two scales, one axis",
		Description: "two series of very different magnitude over one x axis, each with its own y scale",
		Width:       6,
		Height:      4,
	}
}

// DefaultTable returns the sinh/sin sample.
func (b *Builder) DefaultTable() figure.Table { return dataset.Waves() }

// Build plots the first series in red on the left scale and the second in
// blue on the right scale.
func (b *Builder) Build(t figure.Table) (figure.Renderable, error) {
	x, left, right, err := split(t)
	if err != nil {
		return nil, err
	}
	return render.NewDualAxis(render.DualAxisConfig{
		XLabel:     x.Name,
		LeftLabel:  label(left, x),
		LeftColor:  render.Red,
		RightLabel: label(right, x),
		RightColor: render.Blue,
		RightMin:   b.RightMin,
		RightMax:   b.RightMax,
	}, x.Values, left.Values, right.Values)
}

// Sketch describes both series for the terminal preview. Each keeps its own
// y scale, like the rendered figure.
func (b *Builder) Sketch(t figure.Table) (figure.Sketch, error) {
	x, left, right, err := split(t)
	if err != nil {
		return figure.Sketch{}, err
	}
	return figure.Sketch{
		Title:        b.Info().Title,
		XLabel:       x.Name,
		YLabel:       label(left, x),
		IndependentY: true,
		Series: []figure.SketchSeries{
			{Label: label(left, x), X: x.Values, Y: left.Values},
			{Label: label(right, x), X: x.Values, Y: right.Values},
		},
	}, nil
}

func split(t figure.Table) (x, left, right figure.Column, _ error) {
	if err := t.Validate(); err != nil {
		return figure.Column{}, figure.Column{}, figure.Column{}, err
	}
	series := t.Series()
	if len(series) != 2 {
		return figure.Column{}, figure.Column{}, figure.Column{},
			fmt.Errorf("dualaxis: table %q needs two series columns, has %d", t.Name, len(series))
	}
	x, _ = t.X()
	return x, series[0], series[1], nil
}

// label names an axis after its series as a function of x, "sinh(x)" style.
func label(series, x figure.Column) string {
	return series.Name + "(" + x.Name + ")"
}

// Compile-time assertion that Builder satisfies the figure contract.
var _ figure.Builder = (*Builder)(nil)
