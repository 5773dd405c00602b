package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.termWidth == 0 {
		return "loading..."
	}

	header := m.renderHeader()
	body := m.tbl.View()
	status := m.renderStatus()

	var lines []string
	lines = append(lines, header, body)
	if m.inline != inlineNone {
		lines = append(lines, m.input.View())
	}
	lines = append(lines, status)
	out := strings.Join(lines, "\n")

	if m.showHelp || m.showLogs {
		title := "Help"
		if m.showLogs {
			title = "Application logs"
		}
		popup := m.styles.PopupBox.Render(m.styles.PopupTitle.Render(title) + "\n\n" + m.modalVP.View())
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, popup)
	}
	return out
}

func (m *Model) renderHeader() string {
	view := m.ctrl.View()
	name := m.ds.Name
	counts := fmt.Sprintf("%d/%d rows", view.FilteredCount, view.TotalCount)
	if n := m.ctrl.SelectedCount(); n > 0 {
		counts += fmt.Sprintf(" · %d selected", n)
	}
	if view.AccessErrors > 0 {
		counts += m.styles.Warn.Render(fmt.Sprintf(" · %d bad cells", view.AccessErrors))
	}
	if len(view.DuplicateIDs) > 0 {
		counts += m.styles.Warn.Render(fmt.Sprintf(" · %d duplicate ids", len(view.DuplicateIDs)))
	}
	mode := "virtual"
	if m.mode == modePaged {
		p := m.ctrl.Page()
		mode = fmt.Sprintf("page %d/%d", p.PageIndex+1, max(1, p.PageCount(view.FilteredCount)))
	} else if !m.window.Empty() {
		mode = fmt.Sprintf("rows %d-%d", m.window.Start+1, m.window.End+1)
	}
	return m.styles.Title.Render("tabular") + "  " + m.styles.Accent.Render(name) + "  " + m.styles.Status.Render(counts+" · "+mode)
}

func (m *Model) renderStatus() string {
	var parts []string
	f := m.ctrl.Filter()
	if f.Global != "" {
		parts = append(parts, "search="+f.Global)
	}
	for col, text := range f.PerColumn {
		parts = append(parts, col+"~"+text)
	}
	if f.Expression != "" {
		parts = append(parts, "expr: "+f.Expression)
	}
	if m.follow {
		parts = append(parts, "following")
	}
	if m.lastMsg != "" {
		parts = append(parts, m.lastMsg)
	}
	left := strings.Join(parts, " · ")
	hint := "?: help · q: quit"
	pad := m.termWidth - lipgloss.Width(left) - lipgloss.Width(hint)
	if pad < 1 {
		pad = 1
	}
	return m.styles.Status.Render(left + strings.Repeat(" ", pad) + hint)
}

func helpText() string {
	groups := []struct {
		name string
		keys [][2]string
	}{
		{"Navigation", [][2]string{
			{"↑/↓", "move cursor"}, {"pgup/pgdn", "move a screen"},
			{"g/G", "top/bottom"}, {"←/→", "select column"},
		}},
		{"Sorting", [][2]string{
			{"s", "sort by selected column (asc → desc → off)"},
			{"S", "add/cycle selected column in multi-sort"},
		}},
		{"Filtering", [][2]string{
			{"f", "filter selected column"}, {"/", "global search"},
			{"x", "expression filter, e.g. amount > 100"},
			{"F", "clear all filters"},
		}},
		{"Selection", [][2]string{
			{"space", "toggle row"}, {"a", "select visible rows"},
			{"A", "clear selection"}, {"P", "prune ids gone from the data"},
		}},
		{"Paging", [][2]string{
			{"m", "toggle virtual/paged mode"}, {"[ / ]", "prev/next page"},
			{"+ / -", "grow/shrink page size"},
		}},
		{"Other", [][2]string{
			{"e", "export view (selection-aware) to CSV"},
			{"L", "application logs"}, {"q", "quit"},
		}},
	}
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(g.name + "\n")
		for _, k := range g.keys {
			fmt.Fprintf(&b, "  %-10s %s\n", k[0], k[1])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
