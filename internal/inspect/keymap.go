package inspect

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap defines the key bindings of the inspector.
// Printable keys always go to the expression input, so bindings stay off
// the characters a color expression can contain.
type KeyMap struct {
	NextFormat key.Binding
	PrevFormat key.Binding
	Background key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings shown in the compact helpline.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFormat, k.Background, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped into two columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFormat, k.PrevFormat, k.Background},
		{k.Clear, k.Help, k.Quit},
	}
}

// Keys is the default key map of the inspector.
var Keys = KeyMap{
	NextFormat: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next format"),
	),
	PrevFormat: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev format"),
	),
	Background: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "use as background"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear input"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "f1"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
