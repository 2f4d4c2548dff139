package tui

import (
	"math"

	"coplot/internal/figure"
)

// scale maps data values in [lo, hi] onto micro-pixel coordinates.
type scale struct {
	lo, hi float64
}

// x maps v onto a horizontal micro-pixel column in [0, mw-1].
func (s scale) x(v float64, mw int) int {
	return int(math.Round((v - s.lo) / (s.hi - s.lo) * float64(mw-1)))
}

// y maps v onto a vertical micro-pixel row in [0, mh-1], row 0 on top.
func (s scale) y(v float64, mh int) int {
	return int(math.Round((1 - (v-s.lo)/(s.hi-s.lo)) * float64(mh-1)))
}

// Rasterize draws the sketch onto a braille canvas of w by h terminal
// cells and returns its rows. Non-finite samples break polylines and are
// skipped for bars; a sketch without finite data rasterizes to blank rows.
func Rasterize(sk figure.Sketch, w, h int) []string {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := NewCanvas(w, h)

	xs, ok := xRange(sk)
	if !ok {
		return c.Lines()
	}
	shared, sharedOK := yRange(sk.Series...)
	ysFor := func(i int) (scale, bool) {
		if sk.IndependentY {
			return yRange(sk.Series[i])
		}
		return shared, sharedOK
	}

	drawBars(c, sk, xs, ysFor)
	for i, s := range sk.Series {
		if s.Bars {
			continue
		}
		ys, ok := ysFor(i)
		if !ok {
			continue
		}
		drawPolyline(c, s, xs, ys)
	}
	return c.Lines()
}

// xRange covers every finite x sample in the sketch. Bar positions get
// half a slot of padding on each side so the outermost columns stay inside
// the canvas; a degenerate range is widened to unit size.
func xRange(sk figure.Sketch) (scale, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	barN := 0
	for _, s := range sk.Series {
		for _, v := range s.X {
			if !finite(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if s.Bars && len(s.X) > barN {
			barN = len(s.X)
		}
	}
	if lo > hi {
		return scale{}, false
	}
	if barN > 0 {
		pad := 1.0
		if barN >= 2 {
			pad = (hi - lo) / float64(2*(barN-1))
		}
		lo -= pad
		hi += pad
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return scale{lo: lo, hi: hi}, true
}

// yRange covers every finite y sample of the given series. Bar series pull
// the zero baseline into the range; a degenerate range is widened to unit
// size.
func yRange(series ...figure.SketchSeries) (scale, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Y {
			if !finite(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if s.Bars {
			lo = math.Min(lo, 0)
			hi = math.Max(hi, 0)
		}
	}
	if lo > hi {
		return scale{}, false
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return scale{lo: lo, hi: hi}, true
}

// drawPolyline connects consecutive finite samples, restarting after any
// non-finite sample.
func drawPolyline(c *Canvas, s figure.SketchSeries, xs, ys scale) {
	mw, mh := c.MicroSize()
	var px, py int
	have := false
	for i := range s.X {
		if i >= len(s.Y) {
			break
		}
		if !finite(s.X[i]) || !finite(s.Y[i]) {
			have = false
			continue
		}
		mx := xs.x(s.X[i], mw)
		my := ys.y(s.Y[i], mh)
		if have {
			c.LineMicro(px, py, mx, my)
		}
		px, py, have = mx, my, true
	}
}

// drawBars draws every bar series as grouped vertical strips. Bars from
// different series at the same position sit side by side within a group
// that spans 3/5 of the slot, matching the proportions of the rendered
// figures closely enough for a preview.
func drawBars(c *Canvas, sk figure.Sketch, xs scale, ysFor func(int) (scale, bool)) {
	var slots []int
	for i, s := range sk.Series {
		if s.Bars {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		return
	}
	mw, mh := c.MicroSize()

	first := sk.Series[slots[0]]
	gap := mw / 2
	if len(first.X) >= 2 {
		gap = abs(xs.x(first.X[1], mw) - xs.x(first.X[0], mw))
	}
	group := gap * 3 / 5
	if group < 1 {
		group = 1
	}
	barw := group / len(slots)
	if barw < 1 {
		barw = 1
	}

	for slot, si := range slots {
		s := sk.Series[si]
		ys, ok := ysFor(si)
		if !ok {
			continue
		}
		base := ys.y(0, mh)
		for i := range s.X {
			if i >= len(s.Y) {
				break
			}
			if !finite(s.X[i]) || !finite(s.Y[i]) {
				continue
			}
			left := xs.x(s.X[i], mw) - group/2 + slot*barw
			top, bottom := ys.y(s.Y[i], mh), base
			if top > bottom {
				top, bottom = bottom, top
			}
			for px := left; px < left+barw; px++ {
				for py := top; py <= bottom; py++ {
					c.SetPixel(px, py)
				}
			}
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
