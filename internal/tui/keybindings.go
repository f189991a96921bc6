package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the page-level key bindings.
type KeyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Emergency  key.Binding
	Dismiss    key.Binding
	DismissAll key.Binding
	Theme      key.Binding
	Help       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev tab")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Emergency:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "emergency")),
		Dismiss:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		DismissAll: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "dismiss all")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Select, k.Emergency, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down, k.Select},
		{k.Emergency, k.Dismiss, k.DismissAll, k.Close},
		{k.Theme, k.Help, k.Quit},
	}
}
