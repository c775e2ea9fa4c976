package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	search   key.Binding
	sort     key.Binding
	reload   key.Binding
	copy     key.Binding
	toggle   key.Binding
	reset    key.Binding
	yes      key.Binding
	no       key.Binding
	about    key.Binding
	abort    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	prevPage: key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage: key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("o")),
	search:   key.NewBinding(key.WithKeys("/")),
	sort:     key.NewBinding(key.WithKeys("s")),
	reload:   key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	toggle:   key.NewBinding(key.WithKeys("enter", " ")),
	reset:    key.NewBinding(key.WithKeys("R")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	about:    key.NewBinding(key.WithKeys("v")),
	abort:    key.NewBinding(key.WithKeys("ctrl+c")),
}
