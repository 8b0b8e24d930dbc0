package components

import "github.com/charmbracelet/bubbles/key"

// SortModalKeyMap defines key bindings for the sort picker
type SortModalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultSortModalKeyMap returns the default sort picker key bindings
func DefaultSortModalKeyMap() SortModalKeyMap {
	return SortModalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "sort"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "o"),
			key.WithHelp("esc", "close"),
		),
	}
}

// FilterModalKeyMap defines key bindings for the destination filter
type FilterModalKeyMap struct {
	Enter  key.Binding
	Escape key.Binding
}

// DefaultFilterModalKeyMap returns the default filter key bindings
func DefaultFilterModalKeyMap() FilterModalKeyMap {
	return FilterModalKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// Package-level key map instances
var (
	SortModalKeys   = DefaultSortModalKeyMap()
	FilterModalKeys = DefaultFilterModalKeyMap()
)
