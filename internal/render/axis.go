package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// YRemap maps values from a secondary y scale into primary axis
// coordinates, so a series with its own scale can be drawn on a plot whose
// vertical axis belongs to another series.
type YRemap struct {
	PrimaryMin, PrimaryMax     float64
	SecondaryMin, SecondaryMax float64
}

// Apply converts a secondary-scale value to primary coordinates. An empty
// secondary range collapses every value onto the primary midpoint.
func (m YRemap) Apply(v float64) float64 {
	span := m.SecondaryMax - m.SecondaryMin
	if span == 0 {
		return (m.PrimaryMin + m.PrimaryMax) / 2
	}
	return m.PrimaryMin + (v-m.SecondaryMin)*(m.PrimaryMax-m.PrimaryMin)/span
}

// ApplyAll remaps a whole series.
func (m YRemap) ApplyAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = m.Apply(v)
	}
	return out
}

// rightAxis draws a second vertical axis along the right edge of a plot's
// data area, with its own range, ticks and label. The plot library only
// knows about the left axis, so the caller reserves Width() of canvas to
// the right of the plot and hands both canvases to draw.
type rightAxis struct {
	Min, Max float64
	Label    string
	Ticker   plot.Ticker

	LineStyle  draw.LineStyle
	TickStyle  draw.LineStyle
	TickLength vg.Length
	TickLabel  text.Style
	LabelStyle text.Style
}

// newRightAxis mirrors the styling of p's left axis, tinted with c. An
// empty range widens by one on each side, centring the single value.
func newRightAxis(p *plot.Plot, label string, min, max float64, c color.Color) *rightAxis {
	if min == max {
		min, max = min-1, max+1
	}
	a := &rightAxis{
		Min:        min,
		Max:        max,
		Label:      label,
		Ticker:     plot.DefaultTicks{},
		LineStyle:  p.Y.LineStyle,
		TickStyle:  p.Y.Tick.LineStyle,
		TickLength: p.Y.Tick.Length,
		TickLabel:  p.Y.Tick.Label,
		LabelStyle: p.Y.Label.TextStyle,
	}
	if c != nil {
		a.TickLabel.Color = c
		a.LabelStyle.Color = c
	}
	return a
}

// labelGap separates tick labels from the tick marks and the axis label.
const labelGap = vg.Length(2)

// Width returns the horizontal canvas space the axis needs: tick marks,
// the widest tick label, and the rotated axis label.
func (a *rightAxis) Width() vg.Length {
	w := a.TickLength + labelGap + a.maxTickLabelWidth()
	if a.Label != "" {
		w += labelGap + a.LabelStyle.FontExtents().Height
	}
	return w
}

func (a *rightAxis) maxTickLabelWidth() vg.Length {
	var max vg.Length
	for _, t := range a.Ticker.Ticks(a.Min, a.Max) {
		if t.Label == "" {
			continue
		}
		if w := a.TickLabel.Rectangle(t.Label).Size().X; w > max {
			max = w
		}
	}
	return max
}

// norm maps a value on the secondary scale to [0, 1].
func (a *rightAxis) norm(v float64) float64 {
	if a.Max == a.Min {
		return 0.5
	}
	return (v - a.Min) / (a.Max - a.Min)
}

// draw renders the axis line at the right edge of the plot region on dc,
// using data for the vertical extent and tick placement. dc is the full
// figure canvas; the axis occupies its rightmost Width().
func (a *rightAxis) draw(dc draw.Canvas, data draw.Canvas) {
	x := dc.Max.X - a.Width()
	dc.StrokeLine2(a.LineStyle, x, data.Min.Y, x, data.Max.Y)

	marks := a.Ticker.Ticks(a.Min, a.Max)
	for _, t := range marks {
		y := data.Y(a.norm(t.Value))
		if y < data.Min.Y || y > data.Max.Y {
			continue
		}
		length := a.TickLength
		if t.IsMinor() {
			length /= 2
		}
		dc.StrokeLine2(a.TickStyle, x, y, x+length, y)
	}

	lsty := a.TickLabel
	lsty.XAlign = text.XLeft
	lsty.YAlign = text.YCenter
	lx := x + a.TickLength + labelGap
	for _, t := range marks {
		if t.IsMinor() {
			continue
		}
		y := data.Y(a.norm(t.Value))
		if y < data.Min.Y || y > data.Max.Y {
			continue
		}
		dc.FillText(lsty, vg.Point{X: lx, Y: y}, t.Label)
	}

	if a.Label != "" {
		sty := a.LabelStyle
		sty.Rotation += math.Pi / 2
		sty.XAlign = text.XCenter
		sty.YAlign = text.YBottom
		ext := sty.FontExtents()
		px := lx + a.maxTickLabelWidth() + labelGap + ext.Ascent
		py := (data.Min.Y + data.Max.Y) / 2
		dc.FillText(sty, vg.Point{X: px, Y: py}, a.Label)
	}
}
