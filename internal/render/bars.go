package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bar geometry defaults, in canvas points.
const (
	DefaultBarWidth   = vg.Length(20)
	DefaultBarSpacing = vg.Length(3)
	StackedBarWidth   = vg.Length(30)
)

// BarsConfig describes a bar figure over nominal categories. Grouped
// figures draw each series beside the previous one; stacked figures draw
// each series on top of the accumulated height of the ones before it.
type BarsConfig struct {
	Title  string
	XLabel string
	YLabel string

	// Categories label the nominal x positions; every series must carry
	// one value per category.
	Categories []string

	Stacked bool

	// BarWidth and BarSpacing size the bars; zero values take the
	// defaults above. BarSpacing only applies to grouped figures.
	BarWidth   vg.Length
	BarSpacing vg.Length

	// Colors overrides the per-series colours.
	Colors []color.Color
}

// BarSeries is one named series of per-category values.
type BarSeries struct {
	Label  string
	Values []float64
}

// BarGroup is a renderable grouped or stacked bar figure.
type BarGroup struct {
	p *plot.Plot
}

// GroupOffsets spreads n bars of the given width and spacing symmetrically
// around the category centre, first series leftmost.
func GroupOffsets(n int, width, spacing vg.Length) []vg.Length {
	group := (width + spacing) * vg.Length(n-1)
	offsets := make([]vg.Length, n)
	for i := range offsets {
		offsets[i] = (width+spacing)*vg.Length(i) - group/2
	}
	return offsets
}

// NewBarGroup composes the bar figure described by cfg from the given
// series. Every series must have exactly one value per category.
func NewBarGroup(cfg BarsConfig, series []BarSeries) (*BarGroup, error) {
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("bars: no categories")
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("bars: no series")
	}
	for _, s := range series {
		if len(s.Values) != len(cfg.Categories) {
			return nil, fmt.Errorf("bars: series %q has %d values for %d categories", s.Label, len(s.Values), len(cfg.Categories))
		}
	}

	width := cfg.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
		if cfg.Stacked {
			width = StackedBarWidth
		}
	}
	spacing := cfg.BarSpacing
	if spacing <= 0 {
		spacing = DefaultBarSpacing
	}

	colors := cfg.Colors
	if colors == nil {
		var err error
		colors, err = SeriesColors(len(series))
		if err != nil {
			return nil, err
		}
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel

	offsets := GroupOffsets(len(series), width, spacing)
	var prev *plotter.BarChart
	for i, s := range series {
		bc, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return nil, fmt.Errorf("bars series %q: %w", s.Label, err)
		}
		bc.Color = colors[i%len(colors)]
		bc.LineStyle.Width = 0
		if cfg.Stacked {
			if prev != nil {
				bc.StackOn(prev)
			}
			prev = bc
		} else {
			bc.Offset = offsets[i]
		}

		p.Add(bc)
		if s.Label != "" {
			p.Legend.Add(s.Label, bc)
		}
	}
	p.Legend.Top = true
	p.NominalX(cfg.Categories...)

	return &BarGroup{p: p}, nil
}

// Draw renders the figure onto dc.
func (f *BarGroup) Draw(dc draw.Canvas) error {
	f.p.Draw(dc)
	return nil
}
