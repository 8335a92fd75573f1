package tui

import "github.com/charmbracelet/bubbles/key"

// StripKeyMap defines the keyboard bindings of a StripModel
type StripKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	More  key.Binding
	Fewer key.Binding
}

// DefaultStripKeyMap returns the default strip bindings
func DefaultStripKeyMap() StripKeyMap {
	return StripKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k StripKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.More, k.Fewer}
}

// FullHelp returns keybindings for the expanded help view
func (k StripKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// appKeyMap adds the demo's global bindings to the strip's
type appKeyMap struct {
	StripKeyMap
	Help key.Binding
	Quit key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		StripKeyMap: DefaultStripKeyMap(),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.More, k.Fewer},
		{k.Help, k.Quit},
	}
}
