// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	reload     key.Binding
	water      key.Binding
	archive    key.Binding
	tip        key.Binding
	regenerate key.Binding
	fertilizer key.Binding
	info       key.Binding
	note       key.Binding
	photo      key.Binding
	delete     key.Binding
	copy       key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("L")),
	newItem:    key.NewBinding(key.WithKeys("a")),
	reload:     key.NewBinding(key.WithKeys("r")),
	water:      key.NewBinding(key.WithKeys("w")),
	archive:    key.NewBinding(key.WithKeys("x")),
	tip:        key.NewBinding(key.WithKeys("t")),
	regenerate: key.NewBinding(key.WithKeys("g")),
	fertilizer: key.NewBinding(key.WithKeys("f")),
	info:       key.NewBinding(key.WithKeys("i")),
	note:       key.NewBinding(key.WithKeys("n")),
	photo:      key.NewBinding(key.WithKeys("p")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
