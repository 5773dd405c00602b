package grid

import "testing"

func filterRows() []item {
	return []item{
		{id: "a", v: 3, name: "alpha"},
		{id: "b", v: 1, name: "beta"},
		{id: "c", v: 2, name: "gamma"},
	}
}

func keepAll(rows []item, cols []Column[item], f FilterState) []item {
	var out []item
	for _, r := range rows {
		if Keep(r, cols, f, nil) {
			out = append(out, r)
		}
	}
	return out
}

func TestKeepPerColumnSubstring(t *testing.T) {
	f := FilterState{PerColumn: map[string]string{"name": "AMM"}}
	got := keepAll(filterRows(), itemColumns(), f)
	wantOrder(t, got, "c")
}

func TestKeepGlobalAcrossColumns(t *testing.T) {
	// "2" only appears in the stringified v of row c
	f := FilterState{Global: "2"}
	got := keepAll(filterRows(), itemColumns(), f)
	wantOrder(t, got, "c")
}

func TestKeepAllPredicatesMustPass(t *testing.T) {
	f := FilterState{PerColumn: map[string]string{"name": "a"}, Global: "3"}
	got := keepAll(filterRows(), itemColumns(), f)
	wantOrder(t, got, "a")
}

func TestKeepNonFilterableColumnIgnored(t *testing.T) {
	cols := itemColumns()
	cols[2].Filterable = false
	f := FilterState{PerColumn: map[string]string{"name": "zzz"}}
	got := keepAll(filterRows(), cols, f)
	wantOrder(t, got, "a", "b", "c")
}

func TestKeepNonSearchableSkippedByGlobal(t *testing.T) {
	cols := itemColumns()
	for i := range cols {
		cols[i].Searchable = false
	}
	f := FilterState{Global: "alpha"}
	got := keepAll(filterRows(), cols, f)
	if len(got) != 0 {
		t.Fatalf("global filter must skip non-searchable columns, kept %v", ids(got))
	}
}

func TestKeepNilNeverMatches(t *testing.T) {
	rows := []item{{id: "a", v: nil, name: "nil-ish"}}
	f := FilterState{PerColumn: map[string]string{"v": "n"}}
	if got := keepAll(rows, itemColumns(), f); len(got) != 0 {
		t.Fatalf("nil cell must not match any filter text")
	}
}

func TestFilterMonotonicity(t *testing.T) {
	rows := filterRows()
	cols := itemColumns()
	base := len(keepAll(rows, cols, FilterState{}))
	for _, f := range []FilterState{
		{Global: "a"},
		{PerColumn: map[string]string{"name": "e"}},
		{Global: "a", PerColumn: map[string]string{"v": "1"}},
	} {
		if n := len(keepAll(rows, cols, f)); n > base {
			t.Fatalf("adding filter %+v grew the result set: %d > %d", f, n, base)
		}
	}
}

type exprFunc func(map[string]any) bool

func (f exprFunc) Match(params map[string]any) bool { return f(params) }

func TestKeepExpressionSeesColumnValues(t *testing.T) {
	var seen map[string]any
	m := exprFunc(func(params map[string]any) bool {
		seen = params
		return params["v"] == 2
	})
	var got []item
	for _, r := range filterRows() {
		if Keep(r, itemColumns(), FilterState{}, m) {
			got = append(got, r)
		}
	}
	wantOrder(t, got, "c")
	if seen["name"] != "gamma" {
		t.Fatalf("expression params missing column values: %v", seen)
	}
}

func TestFilterStateActive(t *testing.T) {
	if (FilterState{}).Active() {
		t.Fatalf("empty state must be inactive")
	}
	if !(FilterState{Global: "x"}).Active() {
		t.Fatalf("global text means active")
	}
	if !(FilterState{PerColumn: map[string]string{"a": "y"}}).Active() {
		t.Fatalf("per-column text means active")
	}
}
