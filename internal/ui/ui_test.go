package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabular/internal/grid"
)

func TestSortMark(t *testing.T) {
	single := grid.SortSpec{{ColumnID: "a", Dir: grid.Ascending}}
	if got := sortMark(single, "a"); got != " ↑" {
		t.Fatalf("single asc: %q", got)
	}
	if got := sortMark(single, "b"); got != "" {
		t.Fatalf("unsorted column: %q", got)
	}
	multi := grid.SortSpec{
		{ColumnID: "a", Dir: grid.Descending},
		{ColumnID: "b", Dir: grid.Ascending},
	}
	if got := sortMark(multi, "a"); got != " ↓1" {
		t.Fatalf("multi first: %q", got)
	}
	if got := sortMark(multi, "b"); got != " ↑2" {
		t.Fatalf("multi second: %q", got)
	}
}

func TestKeyMatches(t *testing.T) {
	km := DefaultKeyMap()
	sort := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
	if !keyMatches(sort, km.Sort) {
		t.Fatalf("'s' should match the sort binding")
	}
	if keyMatches(sort, km.MultiSort) {
		t.Fatalf("'s' must not match the 'S' binding")
	}
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	if keyMatches(esc, km.Sort) {
		t.Fatalf("esc must not match a rune binding")
	}
	space := tea.KeyMsg{Type: tea.KeySpace}
	if !keyMatches(space, km.Select) {
		t.Fatalf("space should match the select binding")
	}
}
