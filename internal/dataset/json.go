package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"coplot/internal/figure"
)

type jsonColumn struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type jsonTable struct {
	Name    string       `json:"name,omitempty"`
	Columns []jsonColumn `json:"columns"`
}

// ReadJSON parses a table from its JSON form. The fallback name is used when
// the document does not carry one.
func ReadJSON(r io.Reader, name string) (figure.Table, error) {
	var jt jsonTable
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return figure.Table{}, fmt.Errorf("decode table json: %w", err)
	}

	tbl := figure.Table{Name: jt.Name}
	if tbl.Name == "" {
		tbl.Name = name
	}
	for _, c := range jt.Columns {
		tbl.Columns = append(tbl.Columns, figure.Column{Name: c.Name, Values: c.Values})
	}
	if err := tbl.Validate(); err != nil {
		return figure.Table{}, err
	}
	return tbl, nil
}

// WriteJSON writes the table as indented JSON.
func WriteJSON(w io.Writer, t figure.Table) error {
	jt := jsonTable{Name: t.Name, Columns: make([]jsonColumn, len(t.Columns))}
	for i, c := range t.Columns {
		jt.Columns[i] = jsonColumn{Name: c.Name, Values: c.Values}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jt)
}
