package model

import "github.com/charmbracelet/bubbles/key"

// demoKeyMap defines keybindings for the dock demo.
type demoKeyMap struct {
	Toggle key.Binding
	Save   key.Binding
	Reset  key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k demoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Reset, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Save, k.Cancel},
		{k.Help, k.Quit},
	}
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle block"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "default layout"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),
	}
}
