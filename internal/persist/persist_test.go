package persist

import (
	"os"
	"path/filepath"
	"testing"

	"tabular/internal/grid"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	st := grid.State{
		Sort: grid.SortSpec{
			{ColumnID: "amount", Dir: grid.Descending},
			{ColumnID: "name", Dir: grid.Ascending},
		},
		Filter: grid.FilterState{
			PerColumn:  map[string]string{"city": "oslo"},
			Global:     "open",
			Expression: "qty > 10",
		},
		Page: grid.Pagination{PageIndex: 3, PageSize: 25},
	}
	if err := Save(path, FromGrid(st)); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := Load(path)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	got := loaded.ToGrid()
	if len(got.Sort) != 2 || got.Sort[0].ColumnID != "amount" || got.Sort[0].Dir != grid.Descending {
		t.Fatalf("sort: %+v", got.Sort)
	}
	if got.Sort[1].Dir != grid.Ascending {
		t.Fatalf("second key direction: %+v", got.Sort[1])
	}
	if got.Filter.PerColumn["city"] != "oslo" || got.Filter.Global != "open" || got.Filter.Expression != "qty > 10" {
		t.Fatalf("filter: %+v", got.Filter)
	}
	if got.Page.PageIndex != 3 || got.Page.PageSize != 25 {
		t.Fatalf("page: %+v", got.Page)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, ok, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if ok {
		t.Fatalf("missing file must report ok=false")
	}
}

func TestLoadCorruptFileDegradesGracefully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, ok, err := Load(path)
	if err != nil || ok {
		t.Fatalf("corrupt file must degrade to defaults: ok=%v err=%v", ok, err)
	}
}

func TestSelectionNeverPersisted(t *testing.T) {
	// State has no selection field at all; this is a compile-time property.
	// Keep a runtime check that an empty state round-trips cleanly.
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := Save(path, State{PageSize: 50}); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok, _ := Load(path)
	if !ok || loaded.PageSize != 50 {
		t.Fatalf("round trip: %+v ok=%v", loaded, ok)
	}
}
