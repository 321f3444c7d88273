package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the closet bindings. Bindings that do not apply to the
// current closet state are disabled so key.Matches and the help bar both
// skip them.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Open     key.Binding
	Add      key.Binding
	Close    key.Binding
	Remove   key.Binding
	Quit     key.Binding
}

// Ensure KeyMap implements help.KeyMap.
var _ help.KeyMap = KeyMap{}

// DefaultKeyMap returns the bindings with the closet closed.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open closet"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close closet"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.SetState(false, 0)
	return km
}

// SetState enables the bindings valid for an open or closed closet holding
// n items.
func (km *KeyMap) SetState(open bool, n int) {
	km.Open.SetEnabled(!open)
	km.Add.SetEnabled(open)
	km.Close.SetEnabled(open)
	km.Remove.SetEnabled(open && n > 0)
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Open, km.Add, km.Remove, km.Close, km.Activate, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Next, km.Prev, km.Activate},
		{km.Open, km.Add, km.Remove, km.Close},
		{km.Quit},
	}
}
