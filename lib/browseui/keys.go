// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package browseui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the browser TUI.
type KeyMap struct {
	// Result list navigation.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Kind tab cycling. Digits 1-6 additionally select a tab directly.
	NextTab key.Binding
	PrevTab key.Binding

	// Focus the search input.
	FocusSearch key.Binding

	// Playback actions (active when a Player is configured).
	Queue key.Binding
	Play  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k for the list, h/l for the tabs) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous tab"),
	),
	FocusSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Queue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "queue"),
	),
	Play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
