package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pageKeyMap struct {
	Quit   key.Binding
	Toggle key.Binding
}

func defaultPageKeyMap() pageKeyMap {
	return pageKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Toggle: key.NewBinding(key.WithKeys(" ", "m"), key.WithHelp("space", "menu")),
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.router.DispatchKey(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		m.menu.Toggle()
		m.clampMenu()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		if slug, ok := m.menu.ItemAt(ev.X, ev.Y); ok {
			m.menu.Hover(slug)
		}
	case tea.MouseActionPress:
		switch ev.Button {
		case tea.MouseButtonLeft:
			if slug, ok := m.menu.ItemAt(ev.X, ev.Y); ok && m.menu.Click(slug) {
				return nil
			}
			m.router.DispatchClick(ev)
		case tea.MouseButtonRight:
			m.menu.MoveTo(ev.X, ev.Y)
			m.menu.Show()
			m.clampMenu()
		}
	}
	return nil
}

// clampMenu keeps the visible menu box inside the page.
func (m *Model) clampMenu() {
	w, h := m.menu.Size()
	if w == 0 {
		return
	}
	x, y := m.menu.Position()
	if m.width > 0 && x+w > m.width {
		x = m.width - w
	}
	if m.height > 0 && y+h > m.height {
		y = m.height - h
	}
	m.menu.MoveTo(x, y)
}
