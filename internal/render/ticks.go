package render

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// StepTicks places labelled major ticks every Major units and unlabelled
// minor ticks every Minor units across the axis range. Zero or negative
// steps disable the corresponding ticks.
type StepTicks struct {
	Major float64
	Minor float64
}

// Ticks implements plot.Ticker.
func (s StepTicks) Ticks(min, max float64) []plot.Tick {
	if min > max {
		min, max = max, min
	}
	var ticks []plot.Tick
	major := make(map[float64]bool)
	if s.Major > 0 {
		for _, v := range steps(min, max, s.Major) {
			ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
			major[v] = true
		}
	}
	if s.Minor > 0 {
		for _, v := range steps(min, max, s.Minor) {
			if major[v] {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// steps returns the multiples of step inside [min, max].
func steps(min, max, step float64) []float64 {
	var vs []float64
	for i := math.Ceil(min / step); i*step <= max; i++ {
		vs = append(vs, i*step)
	}
	return vs
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Unlabelled drops the labels from another ticker while keeping its tick
// positions, for grid panels that share an axis drawn on a different panel.
type Unlabelled struct {
	plot.Ticker
}

// Ticks implements plot.Ticker.
func (u Unlabelled) Ticks(min, max float64) []plot.Tick {
	ticks := u.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
