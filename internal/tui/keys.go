package tui

import "github.com/charmbracelet/bubbles/key"

// hubKeys are the bindings handled by the hub on top of list navigation.
type hubKeys struct {
	Quit   key.Binding
	Select key.Binding
	Jump   key.Binding
}

func newHubKeys() hubKeys {
	return hubKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
	}
}

func (k hubKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Jump, k.Quit}
}
