// Package source supplies datasets to the engine: CSV files or stdin,
// growing CSV files in follow mode, and SQLite tables. The engine itself
// imposes nothing beyond "opaque rows with a stable identity".
package source

import (
	"strconv"
	"time"

	"tabular/internal/grid"
)

// Record is one row of a loaded dataset: a stable identity plus raw string
// fields keyed by header name.
type Record struct {
	ID     string
	Fields map[string]string
}

// Dataset is an in-memory table: ordered header, sniffed column kinds, and
// the rows themselves.
type Dataset struct {
	Name     string
	Header   []string
	Kinds    map[string]Kind
	Records  []Record
	IDColumn string
}

// Columns builds the engine column descriptors for the dataset. Accessors
// convert raw strings through the sniffed kind so numeric columns sort
// numerically and timestamps chronologically; blank cells extract as nil
// and therefore sort last.
func (d *Dataset) Columns() []grid.Column[Record] {
	cols := make([]grid.Column[Record], 0, len(d.Header))
	for _, name := range d.Header {
		name := name
		kind := d.Kinds[name]
		col := grid.FieldColumn(name, name, func(r Record) any {
			return kind.Convert(r.Fields[name])
		})
		cols = append(cols, col)
	}
	return cols
}

// RowID is the identity accessor handed to the controller.
func (d *Dataset) RowID(r Record) string { return r.ID }

// KindType classifies a column's dominant value shape.
type KindType int

const (
	KindString KindType = iota
	KindNumber
	KindTime
)

// Kind is the sniffed type of one column, including the time layout that
// matched when the column is temporal.
type Kind struct {
	Type       KindType
	TimeLayout string
}

// Convert turns a raw cell into its typed value. Blank cells are nil
// (missing data); values that fail to parse fall back to the raw string so
// a stray token degrades that cell, not the column.
func (k Kind) Convert(raw string) any {
	if raw == "" {
		return nil
	}
	switch k.Type {
	case KindNumber:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case KindTime:
		if t, err := time.Parse(k.TimeLayout, raw); err == nil {
			return t
		}
	}
	return raw
}
