package tui

// Canvas is a braille drawing surface. Every terminal cell holds a 2x4
// grid of micro-pixels, so a w by h cell canvas exposes a 2w by 4h
// micro-pixel grid.
type Canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

// NewCanvas returns an empty canvas of w by h terminal cells.
func NewCanvas(w, h int) *Canvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Canvas{w: w, h: h, m: m}
}

// MicroSize returns the canvas size in micro-pixels.
func (c *Canvas) MicroSize() (int, int) {
	return c.w * 2, c.h * 4
}

// SetPixel sets the micro-pixel at (mx, my). Out-of-range coordinates are
// ignored so callers can draw unclipped.
func (c *Canvas) SetPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.m[cy][cx] |= bit
}

// LineMicro draws a line between two micro-pixel coordinates using
// Bresenham's algorithm.
func (c *Canvas) LineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines renders the canvas as one string per cell row, top to bottom.
// Empty cells become spaces rather than blank braille so terminals without
// braille fonts degrade gracefully.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			mask := c.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
