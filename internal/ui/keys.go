package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the picker key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Toggle    key.Binding
	RangeDown key.Binding
	RangeUp   key.Binding
	SelectAll key.Binding
	ToggleAll key.Binding
	Clear     key.Binding
	Help      key.Binding
	HelpPager key.Binding
	Confirm   key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		RangeDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "extend down")),
		RangeUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "extend up")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ToggleAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle all")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		HelpPager: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help pager")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// forMode disables bindings that have no meaning for single selection
func (k keyMap) forMode(multi bool) keyMap {
	k.SelectAll.SetEnabled(multi)
	k.ToggleAll.SetEnabled(multi)
	k.RangeDown.SetEnabled(multi)
	k.RangeUp.SetEnabled(multi)
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Clear, k.Confirm, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Toggle, k.RangeDown, k.RangeUp, k.SelectAll, k.ToggleAll, k.Clear},
		{k.Confirm, k.Quit, k.Help, k.HelpPager},
	}
}
