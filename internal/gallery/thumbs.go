package gallery

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"coplot/internal/figure"
)

// Thumbnail size in pixels.
const (
	thumbWidth  = 240
	thumbHeight = 120
)

// Thumb renders a small axis-less preview of a sketch: a sparkline overlay
// for line sketches, a mini bar chart for bar sketches.
func Thumb(sk figure.Sketch) ([]byte, error) {
	if len(sk.Series) == 0 {
		return nil, fmt.Errorf("thumb %q: empty sketch", sk.Title)
	}
	if sk.Series[len(sk.Series)-1].Bars {
		return barThumb(sk)
	}
	return lineThumb(sk)
}

// lineThumb overlays every series as a sparkline. Values are normalised to
// [0, 1] so sketches with independent scales stay visible side by side.
func lineThumb(sk figure.Sketch) ([]byte, error) {
	var shared [2]float64
	if !sk.IndependentY {
		shared = valueRange(sk.Series)
	}

	var series []chart.Series
	for i, s := range sk.Series {
		if len(s.X) < 2 || len(s.Y) < 2 {
			continue
		}
		r := shared
		if sk.IndependentY {
			r = valueRange([]figure.SketchSeries{s})
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: s.X,
			YValues: normalised(s.Y, r),
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1.5,
			},
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("thumb %q: no drawable series", sk.Title)
	}

	c := chart.Chart{
		Width:      thumbWidth,
		Height:     thumbHeight,
		Background: chart.Style{Padding: chart.Box{Top: 6, Left: 6, Right: 6, Bottom: 6}},
		XAxis:      chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: -0.05, Max: 1.05},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("thumb %q: %w", sk.Title, err)
	}
	return buf.Bytes(), nil
}

// barThumb draws the sketch's last bar series, which for stacked sketches is
// the running total, so the thumbnail shows the figure's silhouette.
func barThumb(sk figure.Sketch) ([]byte, error) {
	s := sk.Series[len(sk.Series)-1]
	if len(s.Y) == 0 {
		return nil, fmt.Errorf("thumb %q: empty bar series", sk.Title)
	}

	top := 0.0
	bars := make([]chart.Value, len(s.Y))
	for i, v := range s.Y {
		bars[i] = chart.Value{
			Value: v,
			Style: chart.Style{FillColor: chart.GetDefaultColor(0), StrokeWidth: 0},
		}
		if v > top {
			top = v
		}
	}
	if top <= 0 {
		top = 1
	}

	spacing := 8
	barWidth := (thumbWidth-40)/len(bars) - spacing
	if barWidth < 2 {
		barWidth = 2
	}

	c := chart.BarChart{
		Width:      thumbWidth,
		Height:     thumbHeight,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 6, Left: 6, Right: 6, Bottom: 6}},
		XAxis:      chart.Hidden(),
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.05},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("thumb %q: %w", sk.Title, err)
	}
	return buf.Bytes(), nil
}

// valueRange is the finite min and max over the series' values.
func valueRange(series []figure.SketchSeries) [2]float64 {
	first := true
	var r [2]float64
	for _, s := range series {
		for _, v := range s.Y {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if first {
				r[0], r[1] = v, v
				first = false
				continue
			}
			if v < r[0] {
				r[0] = v
			}
			if v > r[1] {
				r[1] = v
			}
		}
	}
	return r
}

// normalised maps vs into [0, 1] over r. An empty range collapses to the
// midline.
func normalised(vs []float64, r [2]float64) []float64 {
	span := r[1] - r[0]
	out := make([]float64, len(vs))
	for i, v := range vs {
		if span == 0 {
			out[i] = 0.5
			continue
		}
		out[i] = (v - r[0]) / span
	}
	return out
}
