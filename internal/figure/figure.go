package figure

import "gonum.org/v1/plot/vg/draw"

// Info describes a registered figure for listings and the gallery index.
// Width and Height carry the figure's preferred render size in inches.
type Info struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// Renderable is a fully composed figure ready to be drawn onto a canvas.
// Implementations are one-shot values: build, draw, discard.
type Renderable interface {
	Draw(dc draw.Canvas) error
}

// Builder turns a data table into a renderable figure. Each builder carries
// its own sample table so every figure can render without external input.
type Builder interface {
	Info() Info
	DefaultTable() Table
	Build(t Table) (Renderable, error)
	Sketch(t Table) (Sketch, error)
}

// Sketch is a low-fi description of a figure for terminal previews. It keeps
// the preview free of any plotting types.
type Sketch struct {
	Title  string
	XLabel string
	YLabel string

	// IndependentY scales each series to its own y range instead of a
	// shared one, mimicking figures where series carry separate scales.
	IndependentY bool

	Series []SketchSeries
}

// SketchSeries is one line or bar series of a sketch.
type SketchSeries struct {
	Label string
	X     []float64
	Y     []float64
	Bars  bool // draw vertical columns instead of a polyline
}
