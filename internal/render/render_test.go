// internal/render/render_test.go
package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aclements/go-moremath/vec"

	"coplot/internal/render"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testDualAxis(t *testing.T) *render.DualAxis {
	t.Helper()
	x := vec.Linspace(-10, 10, 200)
	fig, err := render.NewDualAxis(render.DualAxisConfig{
		XLabel:     "x",
		LeftLabel:  "sinh(x)",
		LeftColor:  render.Red,
		RightLabel: "sin(x)",
		RightColor: render.Blue,
		RightMin:   -1,
		RightMax:   1,
	}, x, vec.Map(math.Sinh, x), vec.Map(math.Sin, x))
	if err != nil {
		t.Fatalf("NewDualAxis: %v", err)
	}
	return fig
}

func TestRenderer_PNGAndSVG(t *testing.T) {
	fig := testDualAxis(t)
	var r render.Renderer

	png, err := r.Render(fig, render.Options{Width: 3, Height: 2, Format: "png"})
	if err != nil {
		t.Fatalf("render png: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("png output starts with % x", png[:8])
	}

	svg, err := r.Render(fig, render.Options{Width: 3, Height: 2, Format: "svg"})
	if err != nil {
		t.Fatalf("render svg: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Fatal("svg output has no <svg element")
	}
}

func TestRenderer_UnknownFormat(t *testing.T) {
	fig := testDualAxis(t)
	var r render.Renderer
	if _, err := r.Render(fig, render.Options{Format: "bmp"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRenderer_DefaultsApplied(t *testing.T) {
	fig := testDualAxis(t)
	var r render.Renderer

	// Zero options fall back to 6x4in PNG.
	b, err := r.Render(fig, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		t.Fatal("default render is not a png")
	}
}

func TestRenderFile_FormatFromExtension(t *testing.T) {
	fig := testDualAxis(t)
	var r render.Renderer

	path := filepath.Join(t.TempDir(), "waves.svg")
	if err := r.RenderFile(fig, path, render.Options{Width: 3, Height: 2}); err != nil {
		t.Fatalf("render file: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Contains(b, []byte("<svg")) {
		t.Fatal("file is not svg despite .svg extension")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"out/fig.PNG": "png",
		"fig.svg":     "svg",
		"fig":         "",
	}
	for path, want := range cases {
		if got := render.FormatFromPath(path); got != want {
			t.Fatalf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNewDualAxis_LengthMismatch(t *testing.T) {
	_, err := render.NewDualAxis(render.DualAxisConfig{RightMax: 1},
		[]float64{1, 2, 3}, []float64{1, 2}, []float64{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for mismatched left series")
	}
}

func TestNewDualAxis_InvertedRightScale(t *testing.T) {
	_, err := render.NewDualAxis(render.DualAxisConfig{RightMin: 1, RightMax: -1},
		[]float64{0}, []float64{0}, []float64{0})
	if err == nil {
		t.Fatal("expected error for inverted right scale")
	}
}

func TestNewDualAxis_EmptyRightScale(t *testing.T) {
	fig, err := render.NewDualAxis(render.DualAxisConfig{RightMin: 1, RightMax: 1},
		[]float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewDualAxis: %v", err)
	}

	var r render.Renderer
	b, err := r.Render(fig, render.Options{Width: 3, Height: 2, Format: "png"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		t.Fatal("render is not a png")
	}
}

func TestNewGrid_RendersAllPanels(t *testing.T) {
	x := vec.Linspace(-10, 10, 100)
	grid, err := render.NewGrid(render.GridConfig{
		Title:     "hyperbolic and trigonometric functions",
		XLabel:    "x",
		YLabel:    "f(x)",
		Rows:      2,
		Cols:      3,
		XMin:      -10,
		XMax:      10,
		RowLimits: [][2]float64{{-1e4, 1e4}, {-2, 2}},
		XTicks:    render.StepTicks{Major: 5, Minor: 1},
	}, []render.GridPanel{
		{Legend: "sinh", X: x, Y: vec.Map(math.Sinh, x)},
		{Legend: "cosh", X: x, Y: vec.Map(math.Cosh, x)},
		{Legend: "tanh", X: x, Y: vec.Map(math.Tanh, x)},
		{Legend: "sin", X: x, Y: vec.Map(math.Sin, x)},
		{Legend: "cos", X: x, Y: vec.Map(math.Cos, x)},
		{Legend: "tan", X: x, Y: vec.Map(math.Tan, x)},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	var r render.Renderer
	b, err := r.Render(grid, render.Options{Width: 4.5, Height: 3, Format: "png"})
	if err != nil {
		t.Fatalf("render grid: %v", err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		t.Fatal("grid render is not a png")
	}
}

func TestNewGrid_Validation(t *testing.T) {
	x := []float64{0, 1}
	panel := render.GridPanel{Legend: "y", X: x, Y: x}

	if _, err := render.NewGrid(render.GridConfig{Rows: 0, Cols: 3}, []render.GridPanel{panel}); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := render.NewGrid(render.GridConfig{Rows: 1, Cols: 1}, nil); err == nil {
		t.Fatal("expected error for no panels")
	}
	if _, err := render.NewGrid(render.GridConfig{Rows: 1, Cols: 1}, []render.GridPanel{panel, panel}); err == nil {
		t.Fatal("expected error for too many panels")
	}
	cfg := render.GridConfig{Rows: 2, Cols: 1, RowLimits: [][2]float64{{0, 1}}}
	if _, err := render.NewGrid(cfg, []render.GridPanel{panel}); err == nil {
		t.Fatal("expected error for row limit count mismatch")
	}
}

func TestNewGrid_ConstantX(t *testing.T) {
	// Limits left to the data, every sample at the same x.
	grid, err := render.NewGrid(render.GridConfig{Rows: 1, Cols: 2}, []render.GridPanel{
		{Legend: "up", X: []float64{3, 3, 3}, Y: []float64{0, 1, 2}},
		{Legend: "down", X: []float64{3, 3, 3}, Y: []float64{2, 1, 0}},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	var r render.Renderer
	b, err := r.Render(grid, render.Options{Width: 3, Height: 2, Format: "png"})
	if err != nil {
		t.Fatalf("render grid: %v", err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		t.Fatal("grid render is not a png")
	}
}

func TestNewBarGroup_RendersGroupedAndStacked(t *testing.T) {
	series := []render.BarSeries{
		{Label: "inner", Values: []float64{0.88, 2.0, 4.67, 3.68, 2.77}},
		{Label: "outer", Values: []float64{0.13, 0.29, 1.56, 4.48, 4.41}},
	}
	categories := []string{"1801", "1851", "1901", "1951", "2001"}

	for _, stacked := range []bool{false, true} {
		fig, err := render.NewBarGroup(render.BarsConfig{
			Title:      "Population of London",
			XLabel:     "year",
			YLabel:     "population (millions)",
			Categories: categories,
			Stacked:    stacked,
		}, series)
		if err != nil {
			t.Fatalf("NewBarGroup(stacked=%v): %v", stacked, err)
		}

		var r render.Renderer
		b, err := r.Render(fig, render.Options{Width: 3, Height: 2, Format: "png"})
		if err != nil {
			t.Fatalf("render bars (stacked=%v): %v", stacked, err)
		}
		if !bytes.HasPrefix(b, pngMagic) {
			t.Fatalf("bars render (stacked=%v) is not a png", stacked)
		}
	}
}

func TestSeriesColors_ClampsPaletteSize(t *testing.T) {
	for _, n := range []int{1, 2, 3, 12, 15} {
		colors, err := render.SeriesColors(n)
		if err != nil {
			t.Fatalf("SeriesColors(%d): %v", n, err)
		}
		if len(colors) != n {
			t.Fatalf("SeriesColors(%d) = %d colours", n, len(colors))
		}
		for i, c := range colors {
			if c == nil {
				t.Fatalf("SeriesColors(%d)[%d] is nil", n, i)
			}
		}
	}
	if colors, err := render.SeriesColors(0); err != nil || colors != nil {
		t.Fatalf("SeriesColors(0) = %v, %v", colors, err)
	}
}

func TestXYPairs_LengthMismatch(t *testing.T) {
	if _, err := render.XYPairs([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	pts, err := render.XYPairs([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("XYPairs: %v", err)
	}
	if pts[1].X != 2 || pts[1].Y != 4 {
		t.Fatalf("pts[1] = %+v, want {2 4}", pts[1])
	}
}
