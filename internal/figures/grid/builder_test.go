package grid_test

import (
	"testing"

	"coplot/internal/figures/grid"
)

func TestBuilder_BuildSample(t *testing.T) {
	b := grid.New()
	fig, err := b.Build(b.DefaultTable())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig == nil {
		t.Fatal("Build returned nil figure")
	}
}

func TestBuilder_RejectsOverfullLayout(t *testing.T) {
	b := grid.New()
	b.Rows, b.Cols = 1, 2
	b.RowLimits = nil
	if _, err := b.Build(b.DefaultTable()); err == nil {
		t.Fatal("expected error for six series in a 1x2 layout")
	}
}

func TestBuilder_RejectsRowLimitMismatch(t *testing.T) {
	b := grid.New()
	b.Rows, b.Cols = 3, 2
	if _, err := b.Build(b.DefaultTable()); err == nil {
		t.Fatal("expected error for two row limits across three rows")
	}
}

func TestBuilder_Sketch(t *testing.T) {
	b := grid.New()
	sk, err := b.Sketch(b.DefaultTable())
	if err != nil {
		t.Fatalf("Sketch: %v", err)
	}
	if len(sk.Series) != 6 {
		t.Fatalf("sketch has %d series, want 6", len(sk.Series))
	}
	want := []string{"sinh", "cosh", "tanh", "sin", "cos", "tan"}
	for i, s := range sk.Series {
		if s.Label != want[i] {
			t.Fatalf("series %d labelled %q, want %q", i, s.Label, want[i])
		}
		if s.Bars {
			t.Fatalf("series %q sketched as bars", s.Label)
		}
	}
	if sk.Title != "hyperbolic and trigonometric functions" {
		t.Fatalf("sketch title %q", sk.Title)
	}
}

func TestBuilder_Info(t *testing.T) {
	info := grid.New().Info()
	if info.Name != "grid" {
		t.Fatalf("info name %q, want %q", info.Name, "grid")
	}
	if info.Width != 9 || info.Height != 6 {
		t.Fatalf("info size %gx%g, want 9x6", info.Width, info.Height)
	}
}
