package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tabular/internal/config"
	"tabular/internal/grid"
	"tabular/internal/source"
	"tabular/internal/util/logx"
)

func initialModel(ctx context.Context, cfg *config.Config, ds *source.Dataset, ctrl *grid.Controller[source.Record]) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		ds:     ds,
		ctrl:   ctrl,
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		keymap: DefaultKeyMap(),
		input:  textinput.New(),
		mode:   modeVirtual,
		follow: cfg.Follow,
	}
	m.input.CharLimit = 256
	m.modalVP = viewport.New(80, 20)

	m.tbl = table.New(table.WithFocused(true), table.WithHeight(20))
	ts := table.DefaultStyles()
	ts.Header = m.styles.TableStyles.Header
	ts.Cell = m.styles.TableStyles.Cell
	ts.Selected = m.styles.TableStyles.Selected
	m.tbl.SetStyles(ts)

	if cfg.Follow {
		m.ring = source.NewRing(cfg.MaxBuffer)
		for _, r := range ds.Records {
			m.ring.Push(r)
		}
		m.followRecs, m.followErrs = source.Follow(ctx, cfg.FilePath, ds.Header, ds.IDColumn, len(ds.Records))
		logx.Infof("follow: tailing %s from row %d", cfg.FilePath, len(ds.Records))
	}

	m.refreshTable()
	return m
}

// Run starts the browser over an already-loaded dataset and controller.
// The caller owns persistence of the controller state around this call.
func Run(ctx context.Context, cfg *config.Config, ds *source.Dataset, ctrl *grid.Controller[source.Record]) error {
	m := initialModel(ctx, cfg, ds, ctrl)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}
