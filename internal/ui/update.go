package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tabular/internal/export"
	"tabular/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		h := msg.Height - 6
		if h < 3 {
			h = 3
		}
		m.tbl.SetHeight(h)
		m.modalVP.Width = msg.Width - 8
		m.modalVP.Height = msg.Height - 6
		m.refreshTable()
		return m, nil

	case tickMsg:
		if m.follow {
			m.drainFollow()
			if m.pending {
				m.pending = false
				recs, total, dropped := m.ring.Snapshot()
				m.ctrl.SetData(recs)
				if dropped > 0 {
					logx.Warnf("follow: buffer overflow, dropped %d of %d rows (cap=%d)", dropped, total, m.ring.Cap())
				}
				m.refreshTable()
			}
		}
		return m, tick()

	case toastMsg:
		m.lastMsg = msg.text
		return m, nil

	case followErrMsg:
		m.lastMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) drainFollow() {
	for {
		select {
		case r, ok := <-m.followRecs:
			if !ok {
				m.follow = false
				return
			}
			m.ring.Push(r)
			m.pending = true
		case err, ok := <-m.followErrs:
			if ok && err != nil {
				logx.Errorf("follow: %v", err)
			}
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.inline != inlineNone {
		return m.handleInlineKey(msg)
	}
	if m.showHelp || m.showLogs {
		switch msg.Type {
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.modalVP, cmd = m.modalVP.Update(msg)
			return m, cmd
		}
		m.showHelp, m.showLogs = false, false
		return m, nil
	}

	km := m.keymap
	cols := m.ctrl.Columns()
	switch {
	case keyMatches(msg, km.Quit):
		return m, tea.Quit

	case msg.Type == tea.KeyLeft:
		if m.colIdx > 0 {
			m.colIdx--
			m.refreshTable()
		}
	case msg.Type == tea.KeyRight:
		if m.colIdx < len(cols)-1 {
			m.colIdx++
			m.refreshTable()
		}

	case keyMatches(msg, km.Sort), keyMatches(msg, km.MultiSort):
		if m.colIdx >= 0 && m.colIdx < len(cols) {
			m.ctrl.SetSort(cols[m.colIdx].ID, keyMatches(msg, km.MultiSort))
			m.refreshTable()
			m.lastMsg = describeSort(m)
		}

	case keyMatches(msg, km.Filter):
		if m.colIdx >= 0 && m.colIdx < len(cols) {
			m.inline = inlineFilterColumn
			m.input.Prompt = "filter " + cols[m.colIdx].ID + ": "
			m.input.SetValue(m.ctrl.Filter().PerColumn[cols[m.colIdx].ID])
			m.input.Focus()
		}
	case keyMatches(msg, km.Global):
		m.inline = inlineFilterGlobal
		m.input.Prompt = "search: "
		m.input.SetValue(m.ctrl.Filter().Global)
		m.input.Focus()
	case keyMatches(msg, km.Expr):
		m.inline = inlineExpr
		m.input.Prompt = "expr: "
		m.input.SetValue(m.ctrl.Filter().Expression)
		m.input.Focus()
	case keyMatches(msg, km.ClearFilter):
		m.ctrl.ClearFilters()
		m.refreshTable()
		m.lastMsg = "filters cleared"

	case keyMatches(msg, km.Select):
		if id, ok := m.currentRowID(); ok {
			m.ctrl.ToggleSelect(id)
			m.refreshTable()
		}
	case keyMatches(msg, km.SelectAll):
		m.ctrl.SelectAll(m.pageIDs)
		m.refreshTable()
		m.lastMsg = fmt.Sprintf("%d selected", m.ctrl.SelectedCount())
	case keyMatches(msg, km.ClearSel):
		m.ctrl.ClearSelection()
		m.refreshTable()
		m.lastMsg = "selection cleared"
	case keyMatches(msg, km.PruneSel):
		m.ctrl.PruneSelection()
		m.refreshTable()
		m.lastMsg = fmt.Sprintf("selection pruned to %d", m.ctrl.SelectedCount())

	case keyMatches(msg, km.Export):
		out := m.cfg.ExportOut
		if out == "" {
			out = "tabular-export.csv"
		}
		scope := export.ScopeAllVisible
		if m.ctrl.SelectedCount() > 0 {
			scope = export.ScopeSelected
		}
		if err := export.ToFile(out, m.ctrl, scope); err != nil {
			m.lastMsg = "export failed: " + err.Error()
			logx.Errorf("export: %v", err)
		} else {
			m.lastMsg = "exported to " + out
			logx.Infof("export: wrote %s (scope=%s)", out, scope)
		}

	case keyMatches(msg, km.Mode):
		if m.mode == modeVirtual {
			m.mode = modePaged
		} else {
			m.mode = modeVirtual
		}
		m.refreshTable()

	case keyMatches(msg, km.NextPage):
		if m.mode == modePaged {
			m.ctrl.SetPage(m.ctrl.Page().PageIndex + 1)
			m.refreshTable()
		}
	case keyMatches(msg, km.PrevPage):
		if m.mode == modePaged {
			m.ctrl.SetPage(m.ctrl.Page().PageIndex - 1)
			m.refreshTable()
		}
	case keyMatches(msg, km.GrowPage):
		m.ctrl.SetPageSize(m.ctrl.Page().PageSize + 10)
		m.refreshTable()
	case keyMatches(msg, km.ShrinkPage):
		if s := m.ctrl.Page().PageSize - 10; s > 0 {
			m.ctrl.SetPageSize(s)
			m.refreshTable()
		}

	case keyMatches(msg, km.Top):
		m.moveCursor(-1 << 30)
	case keyMatches(msg, km.Bottom):
		m.moveCursor(1 << 30)
	case msg.Type == tea.KeyUp:
		m.moveCursor(-1)
	case msg.Type == tea.KeyDown:
		m.moveCursor(1)
	case msg.Type == tea.KeyPgUp:
		m.moveCursor(-m.tbl.Height())
	case msg.Type == tea.KeyPgDown:
		m.moveCursor(m.tbl.Height())

	case keyMatches(msg, km.Help):
		m.showHelp = true
		m.modalVP.SetContent(helpText())
		m.modalVP.GotoTop()
	case keyMatches(msg, km.AppLogs):
		m.showLogs = true
		m.modalVP.SetContent(logx.Dump())
		m.modalVP.GotoBottom()
	}
	return m, nil
}

// moveCursor moves the selection. Virtual mode tracks an absolute cursor in
// the filtered view and re-windows around it; paged mode moves within the
// current page.
func (m *Model) moveCursor(delta int) {
	if m.mode == modePaged {
		switch {
		case delta <= -1<<20:
			m.tbl.GotoTop()
		case delta >= 1<<20:
			m.tbl.GotoBottom()
		case delta < 0:
			m.tbl.MoveUp(-delta)
		default:
			m.tbl.MoveDown(delta)
		}
		return
	}
	n := m.ctrl.View().FilteredCount
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > n-1 {
		m.cursor = n - 1
	}
	m.refreshTable()
}

func (m *Model) handleInlineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inline = inlineNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		mode := m.inline
		m.inline = inlineNone
		m.input.Blur()
		cols := m.ctrl.Columns()
		switch mode {
		case inlineFilterColumn:
			if m.colIdx >= 0 && m.colIdx < len(cols) {
				m.ctrl.SetFilter(cols[m.colIdx].ID, text)
			}
		case inlineFilterGlobal:
			m.ctrl.SetFilter("", text)
		case inlineExpr:
			if err := m.ctrl.SetExpression(text); err != nil {
				m.lastMsg = "expr: " + err.Error()
				return m, nil
			}
		}
		m.cursor, m.top = 0, 0
		m.refreshTable()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func describeSort(m *Model) string {
	spec := m.ctrl.Sort()
	if len(spec) == 0 {
		return "sort cleared"
	}
	parts := make([]string, len(spec))
	for i, k := range spec {
		parts[i] = k.ColumnID + " " + k.Dir.String()
	}
	return "sort: " + strings.Join(parts, ", ")
}
