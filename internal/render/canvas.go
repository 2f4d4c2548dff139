package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Option defaults, sizes in inches.
const (
	DefaultWidth  = 6
	DefaultHeight = 4
	DefaultFormat = "png"
)

// Options control the output geometry and encoding of a figure.
type Options struct {
	Width  float64 // inches
	Height float64 // inches
	Format string  // png, svg, pdf, eps, jpg, tif
}

// normalized fills in defaults and canonicalizes the format name.
func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	o.Format = strings.TrimPrefix(strings.ToLower(o.Format), ".")
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	return o
}

// Figure is anything that can draw itself onto a canvas.
type Figure interface {
	Draw(dc draw.Canvas) error
}

// Renderer encodes figures into image bytes or files.
type Renderer struct{}

// Render draws fig at the requested size and encodes it in the requested
// format.
func (r Renderer) Render(fig Figure, o Options) ([]byte, error) {
	o = o.normalized()

	c, err := draw.NewFormattedCanvas(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch, o.Format)
	if err != nil {
		return nil, fmt.Errorf("new %s canvas: %w", o.Format, err)
	}
	if err := fig.Draw(draw.New(c)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", o.Format, err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders fig into path, inferring the format from the file
// extension when o.Format is empty.
func (r Renderer) RenderFile(fig Figure, path string, o Options) error {
	if o.Format == "" {
		o.Format = FormatFromPath(path)
	}
	b, err := r.Render(fig, o)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}

// FormatFromPath maps a file extension to a render format name.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
