package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	refresh   key.Binding
	preset    key.Binding
	archived  key.Binding
	archive   key.Binding
	responded key.Binding
	readAll   key.Binding
	newItem   key.Binding
	toggle    key.Binding
	delete    key.Binding
	copy      key.Binding
	theme     key.Binding
	language  key.Binding
	edit      key.Binding
	search    key.Binding
	sort      key.Binding
	region    key.Binding
	annual    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	refresh:   key.NewBinding(key.WithKeys("ctrl+r")),
	preset:    key.NewBinding(key.WithKeys("p")),
	archived:  key.NewBinding(key.WithKeys("v")),
	archive:   key.NewBinding(key.WithKeys("x")),
	responded: key.NewBinding(key.WithKeys("m")),
	readAll:   key.NewBinding(key.WithKeys("A")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	theme:     key.NewBinding(key.WithKeys("t")),
	language:  key.NewBinding(key.WithKeys("g")),
	edit:      key.NewBinding(key.WithKeys("e")),
	search:    key.NewBinding(key.WithKeys("/")),
	sort:      key.NewBinding(key.WithKeys("o")),
	region:    key.NewBinding(key.WithKeys("u")),
	annual:    key.NewBinding(key.WithKeys("a")),
}
