package grid

import (
	"fmt"

	"coplot/internal/dataset"
	"coplot/internal/figure"
	"coplot/internal/render"
)

// Builder composes the panel grid from a table with one x column and one
// series per panel. The zero value is unusable; New fills in the sample
// layout.
type Builder struct {
	Rows, Cols int

	// XMin and XMax fix the shared x limits; equal values let the data
	// decide.
	XMin, XMax float64

	// RowLimits fixes the y limits per row. Empty leaves each row to the
	// union of its panels.
	RowLimits [][2]float64

	// MajorStep and MinorStep place the shared x ticks: labelled majors
	// every MajorStep, unlabelled minors every MinorStep. A zero MajorStep
	// falls back to the default tick algorithm.
	MajorStep, MinorStep float64

	// Title is the supertitle centred above the whole grid.
	Title string
}

// New returns a builder with the sample layout: two rows of three panels,
// hyperbolic functions on a wide scale up top, circular ones below.
func New() *Builder {
	return &Builder{
		Rows:      2,
		Cols:      3,
		XMin:      -10,
		XMax:      10,
		RowLimits: [][2]float64{{-1e4, 1e4}, {-2, 2}},
		MajorStep: 5,
		MinorStep: 1,
		Title:     "hyperbolic and trigonometric functions",
	}
}

func (b *Builder) Info() figure.Info {
	return figure.Info{
		Name:        "grid",
		Title:       "Shared-axis function grid",
		Description: "one panel per series with shared x limits and ticks, one y scale per row",
		Width:       9,
		Height:      6,
	}
}

// DefaultTable returns the six-function sample.
func (b *Builder) DefaultTable() figure.Table { return dataset.Functions() }

// Build lays the table's series out row-major, one panel each, legend
// entries named after the columns.
func (b *Builder) Build(t figure.Table) (figure.Renderable, error) {
	x, series, err := b.split(t)
	if err != nil {
		return nil, err
	}

	panels := make([]render.GridPanel, len(series))
	for i, s := range series {
		panels[i] = render.GridPanel{Legend: s.Name, X: x.Values, Y: s.Values}
	}

	cfg := render.GridConfig{
		Title:     b.Title,
		XLabel:    x.Name,
		YLabel:    "f(" + x.Name + ")",
		Rows:      b.Rows,
		Cols:      b.Cols,
		XMin:      b.XMin,
		XMax:      b.XMax,
		RowLimits: b.RowLimits,
	}
	if b.MajorStep > 0 {
		cfg.XTicks = render.StepTicks{Major: b.MajorStep, Minor: b.MinorStep}
	}
	return render.NewGrid(cfg, panels)
}

// Sketch overlays every series for the terminal preview, each on its own
// scale so the unbounded functions do not flatten the bounded ones.
func (b *Builder) Sketch(t figure.Table) (figure.Sketch, error) {
	x, series, err := b.split(t)
	if err != nil {
		return figure.Sketch{}, err
	}
	sk := figure.Sketch{
		Title:        b.Title,
		XLabel:       x.Name,
		YLabel:       "f(" + x.Name + ")",
		IndependentY: true,
	}
	for _, s := range series {
		sk.Series = append(sk.Series, figure.SketchSeries{Label: s.Name, X: x.Values, Y: s.Values})
	}
	return sk, nil
}

func (b *Builder) split(t figure.Table) (figure.Column, []figure.Column, error) {
	if err := t.Validate(); err != nil {
		return figure.Column{}, nil, err
	}
	series := t.Series()
	if len(series) > b.Rows*b.Cols {
		return figure.Column{}, nil,
			fmt.Errorf("grid: table %q has %d series for a %dx%d layout", t.Name, len(series), b.Rows, b.Cols)
	}
	x, _ := t.X()
	return x, series, nil
}

// Compile-time assertion that Builder satisfies the figure contract.
var _ figure.Builder = (*Builder)(nil)
