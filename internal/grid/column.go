package grid

import "fmt"

// Column describes how to extract, compare, and label one value of a row.
type Column[T any] struct {
	ID         string
	Title      string
	Accessor   func(T) any
	Sortable   bool
	Filterable bool
	// Searchable marks the column as a target of the global filter.
	Searchable bool
	// Internal columns (selection markers, surrogate ids) are skipped by export.
	Internal bool
	// Comparator overrides the default value ordering when set.
	Comparator func(a, b any) int
}

// FieldColumn builds a sortable, filterable, searchable column around an accessor.
func FieldColumn[T any](id, title string, accessor func(T) any) Column[T] {
	return Column[T]{ID: id, Title: title, Accessor: accessor, Sortable: true, Filterable: true, Searchable: true}
}

// Label returns the display label for the column header.
func (c Column[T]) Label() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}

// Value extracts the cell value for row. A panicking accessor is recovered
// into an error so a single malformed row cannot take the whole view down;
// callers treat the errored cell as nil (sorts last, matches no filter).
func (c Column[T]) Value(row T) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = fmt.Errorf("column %s: accessor: %v", c.ID, r)
		}
	}()
	if c.Accessor == nil {
		return nil, nil
	}
	return c.Accessor(row), nil
}

func columnIndex[T any](columns []Column[T], id string) int {
	for i := range columns {
		if columns[i].ID == id {
			return i
		}
	}
	return -1
}
