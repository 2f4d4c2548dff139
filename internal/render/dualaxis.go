package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// DualAxisConfig describes a two-scale overlay: one x axis, a left series
// on the plot's own y axis and a right series on an independent scale.
type DualAxisConfig struct {
	Title  string
	XLabel string

	LeftLabel  string
	LeftColor  color.Color
	RightLabel string
	RightColor color.Color

	// RightMin and RightMax fix the right-hand scale. The left scale and
	// the x axis follow the data.
	RightMin, RightMax float64
}

// DualAxis draws two series of very different magnitude over one x axis by
// remapping the second series into the coordinates of the first and drawing
// a dedicated axis for it on the right.
type DualAxis struct {
	p     *plot.Plot
	right *rightAxis
}

// NewDualAxis composes the overlay from paired samples. x, left and right
// must have equal length.
func NewDualAxis(cfg DualAxisConfig, x, left, right []float64) (*DualAxis, error) {
	if cfg.RightMin > cfg.RightMax {
		return nil, fmt.Errorf("dual axis: right scale [%g, %g] inverted", cfg.RightMin, cfg.RightMax)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.LeftLabel
	TintY(&p.Y, cfg.LeftColor)

	ll, err := Line(x, left, cfg.LeftColor)
	if err != nil {
		return nil, fmt.Errorf("dual axis left series: %w", err)
	}

	// Pin the left scale before remapping so out-of-scale right values
	// clip at the plot edge instead of stretching the axis.
	lo, hi := minMax(left)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	p.Y.Min, p.Y.Max = lo, hi

	remap := YRemap{
		PrimaryMin: lo, PrimaryMax: hi,
		SecondaryMin: cfg.RightMin, SecondaryMax: cfg.RightMax,
	}
	rl, err := Line(x, remap.ApplyAll(right), cfg.RightColor)
	if err != nil {
		return nil, fmt.Errorf("dual axis right series: %w", err)
	}
	p.Add(ll, rl)

	return &DualAxis{
		p:     p,
		right: newRightAxis(p, cfg.RightLabel, cfg.RightMin, cfg.RightMax, cfg.RightColor),
	}, nil
}

// Draw renders the plot with room reserved on the right for the second
// axis, then draws that axis aligned with the plot's data area.
func (f *DualAxis) Draw(dc draw.Canvas) error {
	plotArea := draw.Crop(dc, 0, -f.right.Width(), 0, 0)
	f.p.Draw(plotArea)
	f.right.draw(dc, f.p.DataCanvas(plotArea))
	return nil
}
