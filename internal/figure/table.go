package figure

import "fmt"

// Column is a named series of samples.
type Column struct {
	Name   string
	Values []float64
}

// Table is an ordered set of equally long columns. By convention the first
// column carries the x values (or the category positions for bar figures)
// and the remaining columns carry one series each.
type Table struct {
	Name    string
	Columns []Column
}

// Len returns the number of rows.
func (t Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column returns the named column.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// X returns the first column, the conventional x axis.
func (t Table) X() (Column, bool) {
	if len(t.Columns) == 0 {
		return Column{}, false
	}
	return t.Columns[0], true
}

// Series returns every column after the first, one per plotted series.
func (t Table) Series() []Column {
	if len(t.Columns) < 2 {
		return nil
	}
	return t.Columns[1:]
}

// Validate checks that the table has at least two columns and that every
// column has the same number of values. Builders call this before plotting
// so that mismatched x/y pairs are rejected up front.
func (t Table) Validate() error {
	if len(t.Columns) < 2 {
		return fmt.Errorf("table %q: need an x column and at least one series, have %d columns", t.Name, len(t.Columns))
	}
	n := len(t.Columns[0].Values)
	for _, c := range t.Columns[1:] {
		if len(c.Values) != n {
			return fmt.Errorf("table %q: column %q has %d values, want %d", t.Name, c.Name, len(c.Values), n)
		}
	}
	return nil
}
