package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Regenerate key.Binding
	Next       key.Binding
	Prev       key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		Next:       key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next")),
		Prev:       key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "previous")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save png")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Next, k.Save, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.Save},
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}
