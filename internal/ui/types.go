package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"tabular/internal/config"
	"tabular/internal/grid"
	"tabular/internal/source"
)

type viewMode int

const (
	// modeVirtual navigates the whole filtered view through a materialized
	// window around the cursor.
	modeVirtual viewMode = iota
	// modePaged shows one fixed-size page at a time.
	modePaged
)

type inlineMode int

const (
	inlineNone inlineMode = iota
	inlineFilterColumn
	inlineFilterGlobal
	inlineExpr
)

type Model struct {
	ctx context.Context
	cfg *config.Config

	ds   *source.Dataset
	ctrl *grid.Controller[source.Record]

	// Follow mode
	follow     bool
	ring       *source.Ring
	followRecs <-chan source.Record
	followErrs <-chan error
	pending    bool // new records arrived since last refresh

	// UI
	tbl        table.Model
	input      textinput.Model
	modalVP    viewport.Model
	styles     Styles
	keymap     KeyMap
	termWidth  int
	termHeight int

	mode   viewMode
	inline inlineMode

	// Virtual mode position: absolute cursor and first visible index in
	// the filtered view.
	cursor int
	top    int
	window grid.Window

	// Paged mode: ids of the rows currently shown.
	pageIDs []string

	colIdx  int // selected column index, target of sort/filter keys
	lastMsg string

	showHelp bool
	showLogs bool
}

type tickMsg struct{}
type toastMsg struct{ text string }
type followErrMsg struct{ err error }
