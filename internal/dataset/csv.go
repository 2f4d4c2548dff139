package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coplot/internal/figure"
)

// ReadCSV parses a table from CSV: a header row of column names followed by
// numeric rows. The csv reader already rejects ragged rows, so only cell
// parsing and overall shape need checking here.
func ReadCSV(r io.Reader, name string) (figure.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return figure.Table{}, fmt.Errorf("read csv header: %w", err)
	}
	cols := make([]figure.Column, len(header))
	for i, h := range header {
		cols[i] = figure.Column{Name: strings.TrimSpace(h)}
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return figure.Table{}, fmt.Errorf("read csv: %w", err)
		}
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return figure.Table{}, fmt.Errorf("csv line %d, column %q: bad number %q", line, cols[i].Name, cell)
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	tbl := figure.Table{Name: name, Columns: cols}
	if err := tbl.Validate(); err != nil {
		return figure.Table{}, err
	}
	return tbl, nil
}

// WriteCSV writes the table as a header row plus one row per sample.
func WriteCSV(w io.Writer, t figure.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(t.Columns))
	for row := 0; row < t.Len(); row++ {
		for i, c := range t.Columns {
			rec[i] = strconv.FormatFloat(c.Values[row], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
