// Package export serializes the current logical view back into a flat
// CSV grid: CRLF row endings, fields containing the delimiter, quotes, or
// line breaks quoted with embedded quotes doubled.
package export

import (
	"encoding/csv"
	"io"
	"os"

	"tabular/internal/grid"
)

// Scope selects which rows of the view are serialized.
type Scope string

const (
	// ScopeSelected exports the selected rows restricted to the current
	// view, falling back to the whole view when nothing is selected.
	ScopeSelected Scope = "selected"
	// ScopeAllVisible exports every row of the current view.
	ScopeAllVisible Scope = "all-visible"
)

// Rows resolves the scope against a controller: the current filtered view
// in view order, narrowed to the selection when one exists. A selection
// whose rows are all filtered out yields zero data rows; the selection, not
// the view, is what the user asked to export.
func Rows[T any](c *grid.Controller[T], scope Scope) []T {
	if scope == ScopeSelected && c.SelectedCount() > 0 {
		return c.SelectedViewRows()
	}
	return c.ViewRows()
}

// Write serializes rows as CSV. The header row carries the column display
// labels in column order; Internal columns (selection markers, surrogate
// ids) never appear unless explicitly configured as visible.
func Write[T any](w io.Writer, columns []grid.Column[T], rows []T) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	cols := make([]grid.Column[T], 0, len(columns))
	header := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.Internal {
			continue
		}
		cols = append(cols, c)
		header = append(header, c.Label())
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for i := range rows {
		for j, c := range cols {
			v, err := c.Value(rows[i])
			if err != nil {
				v = nil
			}
			record[j] = grid.Stringify(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes the resolved scope of the controller's current view to path.
func ToFile[T any](path string, c *grid.Controller[T], scope Scope) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, c.Columns(), Rows(c, scope))
}
