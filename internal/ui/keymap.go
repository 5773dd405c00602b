package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Sort        tea.Key
	MultiSort   tea.Key
	Filter      tea.Key
	Global      tea.Key
	Expr        tea.Key
	ClearFilter tea.Key
	Select      tea.Key
	SelectAll   tea.Key
	ClearSel    tea.Key
	PruneSel    tea.Key
	Export      tea.Key
	Mode        tea.Key
	NextPage    tea.Key
	PrevPage    tea.Key
	GrowPage    tea.Key
	ShrinkPage  tea.Key
	Top         tea.Key
	Bottom      tea.Key
	Help        tea.Key
	AppLogs     tea.Key
	Quit        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Sort:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'s'}},
		MultiSort:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'S'}},
		Filter:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		Global:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'/'}},
		Expr:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'x'}},
		ClearFilter: tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		Select:      tea.Key{Type: tea.KeyRunes, Runes: []rune{' '}},
		SelectAll:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'a'}},
		ClearSel:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'A'}},
		PruneSel:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'P'}},
		Export:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		Mode:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'m'}},
		NextPage:    tea.Key{Type: tea.KeyRunes, Runes: []rune{']'}},
		PrevPage:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'['}},
		GrowPage:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'+'}},
		ShrinkPage:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'-'}},
		Top:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'g'}},
		Bottom:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'G'}},
		Help:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		AppLogs:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
