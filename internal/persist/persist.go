// Package persist saves and restores engine view state (sort, filter,
// pagination) as a TOML file. Selection is session-scoped and never
// persisted.
package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"tabular/internal/grid"
)

// State is the on-disk shape of grid.State.
type State struct {
	Sort       []SortKey         `toml:"sort,omitempty"`
	Filters    map[string]string `toml:"filters,omitempty"`
	Global     string            `toml:"global,omitempty"`
	Expression string            `toml:"expression,omitempty"`
	PageIndex  int               `toml:"page_index"`
	PageSize   int               `toml:"page_size"`
}

type SortKey struct {
	Column     string `toml:"column"`
	Descending bool   `toml:"descending,omitempty"`
}

// FromGrid converts controller state to its persistable form.
func FromGrid(s grid.State) State {
	out := State{
		Filters:    s.Filter.PerColumn,
		Global:     s.Filter.Global,
		Expression: s.Filter.Expression,
		PageIndex:  s.Page.PageIndex,
		PageSize:   s.Page.PageSize,
	}
	for _, k := range s.Sort {
		out.Sort = append(out.Sort, SortKey{Column: k.ColumnID, Descending: k.Dir == grid.Descending})
	}
	return out
}

// ToGrid converts a loaded state back into controller form.
func (s State) ToGrid() grid.State {
	out := grid.State{
		Filter: grid.FilterState{
			PerColumn:  s.Filters,
			Global:     s.Global,
			Expression: s.Expression,
		},
		Page: grid.Pagination{PageIndex: s.PageIndex, PageSize: s.PageSize},
	}
	if out.Filter.PerColumn == nil {
		out.Filter.PerColumn = map[string]string{}
	}
	for _, k := range s.Sort {
		dir := grid.Ascending
		if k.Descending {
			dir = grid.Descending
		}
		out.Sort = append(out.Sort, grid.SortKey{ColumnID: k.Column, Dir: dir})
	}
	return out
}

// Load reads state from path. A missing or unreadable file is not an error:
// it returns ok=false and the caller proceeds with defaults.
func Load(path string) (State, bool, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return State{}, false, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, false, nil
		}
		return State{}, false, nil // graceful degradation
	}
	var s State
	if err := toml.Unmarshal(data, &s); err != nil {
		return State{}, false, nil
	}
	return s, true, nil
}

// Save writes state to path, creating parent directories as needed.
func Save(path string, s State) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
