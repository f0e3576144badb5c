package ui

import (
	"context"
	"errors"
)

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrItemNotFound = errors.New("menu item not found")
)

// Action is the function bound to a menu item.
type Action func(ctx context.Context) error

type MenuItem struct {
	Label  string
	Action Action
}

type Menu struct {
	Name  string
	Items []MenuItem
}

// NewMenu starts a menu builder. Items keep the order they were added in.
func NewMenu(name string) *Menu {
	return &Menu{Name: name}
}

func (m *Menu) AddItem(label string, action Action) *Menu {
	m.Items = append(m.Items, MenuItem{Label: label, Action: action})
	return m
}

func (m *Menu) Item(label string) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.Label == label {
			return item, true
		}
	}
	return MenuItem{}, false
}

// MenuHost is a UI that can show menus.
type MenuHost interface {
	AddMenu(menu Menu)
}

// Notifier shows a modal message and returns once it is dismissed or ctx
// is done.
type Notifier interface {
	Alert(ctx context.Context, text string) error
}
