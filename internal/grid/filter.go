package grid

import "strings"

// FilterState holds the active filter inputs. Empty string means "no filter"
// for that slot. Expression is an optional govaluate expression over column
// values, compiled by the controller.
type FilterState struct {
	PerColumn  map[string]string
	Global     string
	Expression string
}

// Active reports whether any filter slot is set.
func (f FilterState) Active() bool {
	if f.Global != "" || f.Expression != "" {
		return true
	}
	for _, v := range f.PerColumn {
		if v != "" {
			return true
		}
	}
	return false
}

func (f FilterState) clone() FilterState {
	out := f
	out.PerColumn = make(map[string]string, len(f.PerColumn))
	for k, v := range f.PerColumn {
		out.PerColumn[k] = v
	}
	return out
}

// ExprMatcher evaluates a compiled filter expression against one row's
// column values. A nil matcher keeps every row.
type ExprMatcher interface {
	Match(params map[string]any) bool
}

// Keep reports whether row survives the filter state: every per-column
// predicate must pass, and the global text must appear in at least one
// searchable column. Matching is case-insensitive substring containment
// against the deterministic string form of the cell, so filtering matches
// what was typed, not what a presentation layer displays. Errored cells
// behave like nil and never match.
func Keep[T any](row T, columns []Column[T], f FilterState, expr ExprMatcher) bool {
	for id, text := range f.PerColumn {
		if text == "" {
			continue
		}
		i := columnIndex(columns, id)
		if i < 0 || !columns[i].Filterable {
			continue
		}
		if !cellContains(columns[i], row, text) {
			return false
		}
	}
	if f.Global != "" {
		hit := false
		for i := range columns {
			if !columns[i].Searchable {
				continue
			}
			if cellContains(columns[i], row, f.Global) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if expr != nil {
		params := make(map[string]any, len(columns))
		for i := range columns {
			v, err := columns[i].Value(row)
			if err != nil {
				v = nil
			}
			params[columns[i].ID] = v
		}
		if !expr.Match(params) {
			return false
		}
	}
	return true
}

func cellContains[T any](col Column[T], row T, text string) bool {
	v, err := col.Value(row)
	if err != nil || v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(Stringify(v)), strings.ToLower(text))
}
