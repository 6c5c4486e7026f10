// Package menu provides a generic, non-blocking menu model. Frontends feed it
// intents and draw its items; activation is reported back to the caller.
package menu

import (
	engineinput "haex/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the translation key of the display label.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns the translation key of optional help text.
	GetHelpText() string
}

// Menu is a list of items with one selected
type Menu struct {
	title    string
	items    []MenuItem
	selected int
}

// New creates a menu with the first selectable item selected
func New(title string, items []MenuItem) *Menu {
	m := &Menu{title: title, items: items}
	for i, item := range items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
	return m
}

// Title returns the translation key of the menu title
func (m *Menu) Title() string {
	return m.title
}

// Items returns the menu items
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the selected item
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil for an empty menu
func (m *Menu) SelectedItem() MenuItem {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// Previous moves the selection up to the previous selectable item, wrapping around
func (m *Menu) Previous() {
	for i := m.selected - 1; i >= 0; i-- {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
	// If no item found above, wrap to the last selectable item
	for i := len(m.items) - 1; i > m.selected; i-- {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}

// Next moves the selection down to the next selectable item, wrapping around
func (m *Menu) Next() {
	for i := m.selected + 1; i < len(m.items); i++ {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
	// If no item found below, wrap to the first selectable item
	for i := 0; i < m.selected; i++ {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}

// Handle applies an intent. It returns the activated item, if any.
func (m *Menu) Handle(a engineinput.Action) MenuItem {
	switch a {
	case engineinput.ActionMoveNorth:
		m.Previous()
	case engineinput.ActionMoveSouth:
		m.Next()
	case engineinput.ActionConfirm:
		if item := m.SelectedItem(); item != nil && item.IsSelectable() {
			return item
		}
	}
	return nil
}
