package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shuffle    key.Binding
	Next       key.Binding
	Focus      key.Binding
	Fullscreen key.Binding
	Paste      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Shuffle:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "shuffle & run")),
		Next:       key.NewBinding(key.WithKeys("enter", " ", "right", "n"), key.WithHelp("enter", "start/next")),
		Focus:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("esc/tab", "switch pane")),
		Fullscreen: key.NewBinding(key.WithKeys("ctrl+o", "f"), key.WithHelp("f", "full screen")),
		Paste:      key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy card")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "how to use")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shuffle, k.Next, k.Focus, k.Fullscreen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shuffle, k.Paste, k.Focus},
		{k.Next, k.Copy, k.Fullscreen},
		{k.Help, k.Quit},
	}
}
