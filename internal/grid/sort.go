package grid

import "sort"

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey is one entry of a SortSpec. Earlier keys have higher priority.
type SortKey struct {
	ColumnID string
	Dir      Direction
}

// SortSpec is an ordered list of sort keys. No column id appears twice.
type SortSpec []SortKey

// Toggle advances the spec for columnID. Single mode replaces the whole spec
// and cycles asc -> desc -> none. Multi mode (shift-click semantics) cycles
// the one key in place without disturbing the priority of the others.
func (s SortSpec) Toggle(columnID string, multi bool) SortSpec {
	idx := -1
	for i, k := range s {
		if k.ColumnID == columnID {
			idx = i
			break
		}
	}
	if !multi {
		if idx >= 0 {
			if s[idx].Dir == Ascending {
				return SortSpec{{ColumnID: columnID, Dir: Descending}}
			}
			return nil
		}
		return SortSpec{{ColumnID: columnID, Dir: Ascending}}
	}
	out := make(SortSpec, len(s))
	copy(out, s)
	if idx < 0 {
		return append(out, SortKey{ColumnID: columnID, Dir: Ascending})
	}
	if out[idx].Dir == Ascending {
		out[idx].Dir = Descending
		return out
	}
	return append(out[:idx], out[idx+1:]...)
}

// Sort returns rows reordered by the spec. The sort is stable: rows tying on
// every active key keep their original relative order. An empty spec is the
// identity. Keys naming unknown or non-sortable columns are skipped.
func Sort[T any](rows []T, columns []Column[T], spec SortSpec) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	keys := activeKeys(columns, spec)
	if len(keys) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compareRows(out[i], out[j], keys) < 0
	})
	return out
}

type sortColumn[T any] struct {
	col Column[T]
	dir Direction
}

func activeKeys[T any](columns []Column[T], spec SortSpec) []sortColumn[T] {
	keys := make([]sortColumn[T], 0, len(spec))
	for _, k := range spec {
		i := columnIndex(columns, k.ColumnID)
		if i < 0 || !columns[i].Sortable {
			continue
		}
		keys = append(keys, sortColumn[T]{col: columns[i], dir: k.Dir})
	}
	return keys
}

func compareRows[T any](a, b T, keys []sortColumn[T]) int {
	for _, k := range keys {
		av, aerr := k.col.Value(a)
		bv, berr := k.col.Value(b)
		if aerr != nil {
			av = nil
		}
		if berr != nil {
			bv = nil
		}
		var c int
		if k.col.Comparator != nil {
			c = k.col.Comparator(av, bv)
		} else {
			c = Compare(av, bv)
		}
		if c == 0 {
			continue
		}
		// Flip the sign, not the comparator: nil cells stay last either way.
		if k.dir == Descending && av != nil && bv != nil {
			c = -c
		}
		return c
	}
	return 0
}
