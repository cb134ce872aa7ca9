package tui

import "github.com/charmbracelet/bubbles/key"

// The input always has focus, so every binding avoids printable keys.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	copy  key.Binding
	reuse key.Binding
	info  key.Binding
	quit  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up")),
	down:  key.NewBinding(key.WithKeys("down")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	copy:  key.NewBinding(key.WithKeys("ctrl+y")),
	reuse: key.NewBinding(key.WithKeys("tab")),
	info:  key.NewBinding(key.WithKeys("f1")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c")),
}
