package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the picker's keyboard bindings. Printable runes that match
// none of these are inserted into the query.
type keyMap struct {
	// Session
	Confirm key.Binding
	Cancel  key.Binding

	// Selection
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding
	Move     key.Binding // help-only summary of Up/Down

	// Query editing
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
	WordLeft   key.Binding
	WordRight  key.Binding
	Backspace  key.Binding
	DeleteWord key.Binding
	Clear      key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm selection"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		First: key.NewBinding(
			key.WithKeys("ctrl+home", "alt+<"),
			key.WithHelp("ctrl+home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("ctrl+end", "alt+>"),
			key.WithHelp("ctrl+end", "last"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),

		Left: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
		),
		WordLeft: key.NewBinding(
			key.WithKeys("alt+b", "ctrl+left"),
		),
		WordRight: key.NewBinding(
			key.WithKeys("alt+f", "ctrl+right"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w", "alt+backspace"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Move, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Cancel},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.First, k.Last},
	}
}
