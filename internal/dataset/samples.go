package dataset

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"coplot/internal/figure"
)

// Sampling domain shared by the function tables.
const (
	sampleMin = -10
	sampleMax = 10
	sampleN   = 1000
)

// Waves returns the two-scale demo table: a hyperbolic sine that grows into
// the thousands next to a plain sine bounded by one. It feeds the dual-axis
// figure.
func Waves() figure.Table {
	x := vec.Linspace(sampleMin, sampleMax, sampleN)
	return figure.Table{
		Name: "waves",
		Columns: []figure.Column{
			{Name: "x", Values: x},
			{Name: "sinh", Values: vec.Map(math.Sinh, x)},
			{Name: "sin", Values: vec.Map(math.Sin, x)},
		},
	}
}

// Functions returns the six functions behind the subplot grid: hyperbolic
// variants on the first row, circular ones on the second.
func Functions() figure.Table {
	x := vec.Linspace(sampleMin, sampleMax, sampleN)
	return figure.Table{
		Name: "functions",
		Columns: []figure.Column{
			{Name: "x", Values: x},
			{Name: "sinh", Values: vec.Map(math.Sinh, x)},
			{Name: "cosh", Values: vec.Map(math.Cosh, x)},
			{Name: "tanh", Values: vec.Map(math.Tanh, x)},
			{Name: "sin", Values: vec.Map(math.Sin, x)},
			{Name: "cos", Values: vec.Map(math.Cos, x)},
			{Name: "tan", Values: vec.Map(math.Tan, x)},
		},
	}
}

// London returns census population counts for London by area. The greater
// column is the sum of inner and outer, kept for stacked-total checks.
func London() figure.Table {
	return figure.Table{
		Name: "london",
		Columns: []figure.Column{
			{Name: "year", Values: []float64{1801, 1851, 1901, 1951, 2001}},
			{Name: "inner", Values: []float64{879491, 1995846, 4670177, 3680821, 2765975}},
			{Name: "outer", Values: []float64{131666, 290763, 1556317, 4483595, 4406061}},
			{Name: "greater", Values: []float64{1011157, 2286609, 6226494, 8164416, 7172036}},
		},
	}
}

// Samples returns all builtin tables.
func Samples() []figure.Table {
	return []figure.Table{Waves(), Functions(), London()}
}

// Sample returns the named builtin table.
func Sample(name string) (figure.Table, bool) {
	for _, t := range Samples() {
		if t.Name == name {
			return t, true
		}
	}
	return figure.Table{}, false
}
