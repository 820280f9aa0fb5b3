package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Bezier   key.Binding
	Lagrange key.Binding
	Spline   key.Binding
	Cycle    key.Binding
	More     key.Binding
	Fewer    key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Bezier:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "bézier")),
		Lagrange: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "lagrange")),
		Spline:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "spline")),
		Cycle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next method")),
		More:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more segments")),
		Fewer:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer segments")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.More, k.Fewer, k.Clear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bezier, k.Lagrange, k.Spline, k.Cycle},
		{k.More, k.Fewer, k.Clear},
		{k.Help, k.Quit},
	}
}
