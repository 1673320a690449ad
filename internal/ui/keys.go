package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings
type KeyMap struct {
	Help       key.Binding
	NewTag     key.Binding
	Quit       key.Binding
	SwitchView key.Binding
	Tag        key.Binding
	Toggle     key.Binding
}

// DefaultKeyMap returns the default dashboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NewTag: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new tag"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "today/week"),
		),
		Tag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "start tagged / retag"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/stop"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Tag, k.SwitchView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Tag, k.NewTag},
		{k.SwitchView, k.Help, k.Quit},
	}
}
