package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GridConfig lays out a rows-by-cols grid of line panels with synchronized
// axes: every panel shares the x scale, panels within a row share the y
// scale. Only the bottom row carries x tick labels and the x axis label,
// only the left column carries y tick labels and the y axis label.
type GridConfig struct {
	Title  string // centred above the whole grid
	XLabel string
	YLabel string

	Rows, Cols int

	// XMin and XMax fix the shared x limits. Equal values leave the
	// limits to the union of the panel data.
	XMin, XMax float64

	// RowLimits fixes the y limits per row (one entry per row). Empty
	// leaves each row to the union of its panels' data.
	RowLimits [][2]float64

	// XTicks places the shared x ticks. Nil uses the default algorithm.
	XTicks plot.Ticker

	// Colors overrides the per-panel line colours.
	Colors []color.Color
}

// GridPanel is one cell of the grid: a single line series with a legend
// entry naming it.
type GridPanel struct {
	Legend string
	X, Y   []float64
}

// Grid is a renderable shared-axis panel grid.
type Grid struct {
	title      string
	titleStyle text.Style
	rows, cols int
	panels     [][]*plot.Plot
}

// Padding between tiles and below the supertitle.
const (
	gridPad  = vg.Length(4)
	titlePad = vg.Length(6)
)

// NewGrid composes the panels row-major into the grid described by cfg.
// Trailing cells beyond len(panels) stay empty.
func NewGrid(cfg GridConfig, panels []GridPanel) (*Grid, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("grid: %dx%d layout", cfg.Rows, cfg.Cols)
	}
	if len(panels) == 0 {
		return nil, fmt.Errorf("grid: no panels")
	}
	if len(panels) > cfg.Rows*cfg.Cols {
		return nil, fmt.Errorf("grid: %d panels exceed %dx%d layout", len(panels), cfg.Rows, cfg.Cols)
	}
	if len(cfg.RowLimits) > 0 && len(cfg.RowLimits) != cfg.Rows {
		return nil, fmt.Errorf("grid: %d row limits for %d rows", len(cfg.RowLimits), cfg.Rows)
	}

	colors := cfg.Colors
	if colors == nil {
		var err error
		colors, err = SeriesColors(len(panels))
		if err != nil {
			return nil, err
		}
	}

	xmin, xmax := cfg.XMin, cfg.XMax
	if xmin == xmax {
		xmin, xmax = sharedXRange(panels)
	}
	xticks := cfg.XTicks
	if xticks == nil {
		xticks = plot.DefaultTicks{}
	}

	g := &Grid{
		title:  cfg.Title,
		rows:   cfg.Rows,
		cols:   cfg.Cols,
		panels: make([][]*plot.Plot, cfg.Rows),
	}
	for r := range g.panels {
		g.panels[r] = make([]*plot.Plot, cfg.Cols)
	}

	for i, panel := range panels {
		r, c := i/cfg.Cols, i%cfg.Cols

		p := plot.New()
		if g.titleStyle.Handler == nil {
			g.titleStyle = p.Title.TextStyle
		}

		line, err := Line(panel.X, panel.Y, colors[i%len(colors)])
		if err != nil {
			return nil, fmt.Errorf("grid panel %q: %w", panel.Legend, err)
		}
		p.Add(line)
		if panel.Legend != "" {
			p.Legend.Add(panel.Legend, line)
			p.Legend.Top = true
		}

		p.X.Min, p.X.Max = xmin, xmax
		ymin, ymax := rowYRange(cfg, panels, r)
		p.Y.Min, p.Y.Max = ymin, ymax

		// Inner panels keep their tick marks but lose the labels; the
		// shared labels live on the bottom row and the left column.
		if r == cfg.Rows-1 {
			p.X.Label.Text = cfg.XLabel
			p.X.Tick.Marker = xticks
		} else {
			p.X.Tick.Marker = Unlabelled{xticks}
		}
		if c == 0 {
			p.Y.Label.Text = cfg.YLabel
		} else {
			p.Y.Tick.Marker = Unlabelled{plot.DefaultTicks{}}
		}

		g.panels[r][c] = p
	}
	return g, nil
}

// sharedXRange is the union of all panel x ranges.
func sharedXRange(panels []GridPanel) (lo, hi float64) {
	lo, hi = minMax(panels[0].X)
	for _, p := range panels[1:] {
		l, h := minMax(p.X)
		if l < lo {
			lo = l
		}
		if h > hi {
			hi = h
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// rowYRange resolves the y limits for row r: fixed limits when configured,
// otherwise the union of the row's panel data.
func rowYRange(cfg GridConfig, panels []GridPanel, r int) (lo, hi float64) {
	if len(cfg.RowLimits) > 0 {
		return cfg.RowLimits[r][0], cfg.RowLimits[r][1]
	}
	first := true
	for i, p := range panels {
		if i/cfg.Cols != r {
			continue
		}
		l, h := minMax(p.Y)
		if first {
			lo, hi = l, h
			first = false
			continue
		}
		if l < lo {
			lo = l
		}
		if h > hi {
			hi = h
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Draw renders the supertitle and the aligned panel grid. Alignment works
// on the panels' data areas, so labelled and unlabelled panels line up
// exactly.
func (g *Grid) Draw(dc draw.Canvas) error {
	tilesArea := dc
	if g.title != "" {
		dc.FillText(g.titleStyle, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y}, g.title)
		drop := g.titleStyle.FontExtents().Height + titlePad
		tilesArea = draw.Crop(dc, 0, 0, 0, -drop)
	}

	tiles := draw.Tiles{
		Rows: g.rows,
		Cols: g.cols,
		PadX: gridPad,
		PadY: gridPad,
	}
	canvases := plot.Align(g.panels, tiles, tilesArea)
	for r := range g.panels {
		for c, p := range g.panels[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
	return nil
}
