// internal/dataset/samples_test.go
package dataset_test

import (
	"testing"

	"coplot/internal/dataset"
)

func TestWaves_Shape(t *testing.T) {
	tbl := dataset.Waves()
	if err := tbl.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := len(tbl.Columns); got != 3 {
		t.Fatalf("columns = %d, want 3", got)
	}
	if tbl.Len() != 1000 {
		t.Fatalf("rows = %d, want 1000", tbl.Len())
	}

	x, _ := tbl.X()
	if x.Values[0] != -10 || x.Values[len(x.Values)-1] != 10 {
		t.Fatalf("x spans [%v, %v], want [-10, 10]", x.Values[0], x.Values[len(x.Values)-1])
	}

	sinh, _ := tbl.Column("sinh")
	if last := sinh.Values[len(sinh.Values)-1]; last < 11000 {
		t.Fatalf("sinh(10) = %v, want > 11000", last)
	}
	sin, _ := tbl.Column("sin")
	for i, v := range sin.Values {
		if v < -1 || v > 1 {
			t.Fatalf("sin[%d] = %v out of [-1, 1]", i, v)
		}
	}
}

func TestFunctions_Columns(t *testing.T) {
	tbl := dataset.Functions()
	if err := tbl.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	want := []string{"x", "sinh", "cosh", "tanh", "sin", "cos", "tan"}
	if len(tbl.Columns) != len(want) {
		t.Fatalf("columns = %d, want %d", len(tbl.Columns), len(want))
	}
	for i, name := range want {
		if tbl.Columns[i].Name != name {
			t.Fatalf("column[%d] = %q, want %q", i, tbl.Columns[i].Name, name)
		}
	}

	x, _ := tbl.X()
	for i := 1; i < len(x.Values); i++ {
		if x.Values[i] <= x.Values[i-1] {
			t.Fatalf("x not increasing at %d: %v then %v", i, x.Values[i-1], x.Values[i])
		}
	}
}

func TestLondon_GreaterIsSum(t *testing.T) {
	tbl := dataset.London()

	inner, _ := tbl.Column("inner")
	outer, _ := tbl.Column("outer")
	greater, _ := tbl.Column("greater")

	for i := range greater.Values {
		if sum := inner.Values[i] + outer.Values[i]; sum != greater.Values[i] {
			t.Fatalf("row %d: inner+outer = %v, greater = %v", i, sum, greater.Values[i])
		}
	}
}

func TestSample_Lookup(t *testing.T) {
	if _, ok := dataset.Sample("london"); !ok {
		t.Fatal("sample london not found")
	}
	if _, ok := dataset.Sample("nope"); ok {
		t.Fatal("unexpected sample nope")
	}
	if got := len(dataset.Samples()); got != 3 {
		t.Fatalf("samples = %d, want 3", got)
	}
}
