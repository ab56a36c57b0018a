package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	delete   key.Binding
	remove   key.Binding
	report   key.Binding
	copy     key.Binding
	tutorial key.Binding
	yes      key.Binding
	no       key.Binding

	interrupt key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("d")),
	remove:   key.NewBinding(key.WithKeys("x")),
	report:   key.NewBinding(key.WithKeys("p")),
	copy:     key.NewBinding(key.WithKeys("y")),
	tutorial: key.NewBinding(key.WithKeys("?")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),

	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
}
