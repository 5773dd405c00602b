package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"tabular/internal/grid"
	"tabular/internal/source"
)

// rowIDs of the rows currently materialized in the bubbles table, parallel
// to its row slice. Used to map the table cursor back to an identity.
func (m *Model) currentRowID() (string, bool) {
	c := m.tbl.Cursor()
	ids := m.pageIDs
	if c < 0 || c >= len(ids) {
		return "", false
	}
	return ids[c], true
}

// refreshTable re-derives the view and rebuilds the visible slice: the
// current page in paged mode, or the window around the cursor in virtual
// mode. Everything shown is pulled from the controller; the UI keeps no
// row state of its own.
func (m *Model) refreshTable() {
	view := m.ctrl.View()

	var rows []source.Record
	var ids []string
	switch m.mode {
	case modePaged:
		rows, ids = m.ctrl.PageSlice()
	default:
		h := m.tbl.Height()
		if h <= 0 {
			h = 20
		}
		if view.FilteredCount == 0 {
			m.cursor, m.top = 0, 0
		} else {
			if m.cursor >= view.FilteredCount {
				m.cursor = view.FilteredCount - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
			if m.cursor < m.top {
				m.top = m.cursor
			}
			if m.cursor >= m.top+h {
				m.top = m.cursor - h + 1
			}
			if m.top < 0 {
				m.top = 0
			}
		}
		ext := m.cfg.RowExtent
		if ext <= 0 {
			ext = 1
		}
		m.window = m.ctrl.Window(ext, h*ext, m.top*ext, m.cfg.Overscan)
		rows, ids = m.ctrl.WindowSlice(m.window)
	}
	m.pageIDs = ids

	m.applyColumns()
	trows := make([]table.Row, len(rows))
	for i := range rows {
		trows[i] = m.rowCells(rows[i], ids[i])
	}
	m.tbl.SetRows(trows)

	switch m.mode {
	case modePaged:
		if c := m.tbl.Cursor(); c >= len(trows) && len(trows) > 0 {
			m.tbl.SetCursor(len(trows) - 1)
		}
	default:
		rel := m.cursor - m.window.Start
		if rel < 0 {
			rel = 0
		}
		if rel >= len(trows) && len(trows) > 0 {
			rel = len(trows) - 1
		}
		m.tbl.SetCursor(rel)
	}
}

func (m *Model) applyColumns() {
	cols := m.ctrl.Columns()
	spec := m.ctrl.Sort()
	width := m.termWidth
	if width <= 0 {
		width = 120
	}
	// marker column + even split of the rest
	per := 6
	if len(cols) > 0 {
		per = (width - 4) / len(cols)
		if per < 6 {
			per = 6
		}
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: " ", Width: 1})
	for i, c := range cols {
		title := c.Label()
		if i == m.colIdx {
			title = "«" + title + "»"
		}
		if mark := sortMark(spec, c.ID); mark != "" {
			title += mark
		}
		tcols = append(tcols, table.Column{Title: title, Width: per})
	}
	m.tbl.SetColumns(tcols)
}

func sortMark(spec grid.SortSpec, columnID string) string {
	for i, k := range spec {
		if k.ColumnID != columnID {
			continue
		}
		arrow := "↑"
		if k.Dir == grid.Descending {
			arrow = "↓"
		}
		if len(spec) > 1 {
			return fmt.Sprintf(" %s%d", arrow, i+1)
		}
		return " " + arrow
	}
	return ""
}

func (m *Model) rowCells(r source.Record, id string) table.Row {
	cols := m.ctrl.Columns()
	cells := make([]string, 0, len(cols)+1)
	marker := " "
	if m.ctrl.IsSelected(id) {
		marker = "✓"
	}
	cells = append(cells, marker)
	for _, c := range cols {
		v, err := c.Value(r)
		if err != nil {
			cells = append(cells, "⚠")
			continue
		}
		cells = append(cells, grid.Stringify(v))
	}
	return cells
}
