package dualaxis_test

import (
	"testing"

	"coplot/internal/figure"
	"coplot/internal/figures/dualaxis"
)

func TestBuilder_BuildSample(t *testing.T) {
	b := dualaxis.New()
	fig, err := b.Build(b.DefaultTable())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig == nil {
		t.Fatal("Build returned nil figure")
	}
}

func TestBuilder_RejectsWrongSeriesCount(t *testing.T) {
	b := dualaxis.New()
	one := figure.Table{
		Name: "one",
		Columns: []figure.Column{
			{Name: "x", Values: []float64{0, 1}},
			{Name: "y", Values: []float64{0, 1}},
		},
	}
	if _, err := b.Build(one); err == nil {
		t.Fatal("expected error for single series")
	}

	three := one
	three.Columns = append(three.Columns,
		figure.Column{Name: "y2", Values: []float64{0, 1}},
		figure.Column{Name: "y3", Values: []float64{0, 1}},
	)
	if _, err := b.Build(three); err == nil {
		t.Fatal("expected error for three series")
	}
}

func TestBuilder_RejectsInvertedRightScale(t *testing.T) {
	b := dualaxis.New()
	b.RightMin, b.RightMax = 2, -2
	if _, err := b.Build(b.DefaultTable()); err == nil {
		t.Fatal("expected error for inverted right scale")
	}
}

func TestBuilder_Sketch(t *testing.T) {
	b := dualaxis.New()
	sk, err := b.Sketch(b.DefaultTable())
	if err != nil {
		t.Fatalf("Sketch: %v", err)
	}
	if !sk.IndependentY {
		t.Fatal("dual-axis sketch must scale series independently")
	}
	if len(sk.Series) != 2 {
		t.Fatalf("sketch has %d series, want 2", len(sk.Series))
	}
	if sk.Series[0].Label != "sinh(x)" || sk.Series[1].Label != "sin(x)" {
		t.Fatalf("sketch labels %q, %q", sk.Series[0].Label, sk.Series[1].Label)
	}
	if sk.XLabel != "x" {
		t.Fatalf("sketch x label %q, want %q", sk.XLabel, "x")
	}
}

func TestBuilder_Info(t *testing.T) {
	info := dualaxis.New().Info()
	if info.Name != "dualaxis" {
		t.Fatalf("info name %q, want %q", info.Name, "dualaxis")
	}
	if info.Width != 6 || info.Height != 4 {
		t.Fatalf("info size %gx%g, want 6x4", info.Width, info.Height)
	}
}
