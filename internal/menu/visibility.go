package menu

import "github.com/atomicstack/popup-menu/internal/logging/events"

// Show emits "show" and makes the menu visible.
func (m *Menu) Show() *Menu {
	m.query = ""
	m.events.Emit(EventShow, "")
	m.visible = true
	events.Menu.Show(m.x, m.y)
	return m
}

// Hide emits "hide" and makes the menu invisible.
func (m *Menu) Hide() *Menu {
	m.query = ""
	m.events.Emit(EventHide, "")
	m.visible = false
	events.Menu.Hide()
	return m
}

// Toggle hides a visible menu and shows a hidden one.
func (m *Menu) Toggle() *Menu {
	if m.IsVisible() {
		return m.Hide()
	}
	return m.Show()
}

// IsVisible reports the display state.
func (m *Menu) IsVisible() bool {
	return m.visible
}

// MoveTo places the top-left corner of the menu at column x, row y.
func (m *Menu) MoveTo(x, y int) *Menu {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	m.x, m.y = x, y
	return m
}

// Position returns the top-left corner of the menu.
func (m *Menu) Position() (int, int) {
	return m.x, m.y
}
