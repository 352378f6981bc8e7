package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const pageHint = "right-click or press space to open the menu"

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{render(styles.Page, pageHint)}
	if m.infoMsg != "" {
		lines = append(lines, render(styles.Info, m.infoMsg))
	}
	if m.errMsg != "" {
		lines = append(lines, render(styles.Error, fmt.Sprintf("Error: %s", m.errMsg)))
	}

	footer := ""
	if m.showFooter {
		footer = render(styles.Footer, m.footerText())
	}
	bodyHeight := m.height
	if footer != "" && bodyHeight > 0 {
		bodyHeight--
	}
	for len(lines) < bodyHeight {
		lines = append(lines, "")
	}

	if box := m.menu.View(); box != "" {
		x, y := m.menu.Position()
		lines = overlay(lines, box, x, y)
	}
	if bodyHeight > 0 && len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	if footer != "" {
		lines = append(lines, footer)
	}
	if m.width > 0 {
		for i, line := range lines {
			if ansi.StringWidth(line) > m.width {
				lines[i] = ansi.Truncate(line, m.width, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) footerText() string {
	bindings := []key.Binding{m.keys.Toggle, m.keys.Quit}
	if m.menu.IsVisible() {
		bindings = m.menu.KeyMap().ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		if help.Key == "" {
			continue
		}
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

// overlay draws box over base with its top-left corner at column x, row y.
func overlay(base []string, box string, x, y int) []string {
	out := append([]string(nil), base...)
	for i, row := range strings.Split(box, "\n") {
		idx := y + i
		for len(out) <= idx {
			out = append(out, "")
		}
		bg := out[idx]
		if gap := x - ansi.StringWidth(bg); gap > 0 {
			bg += strings.Repeat(" ", gap)
		}
		left := ansi.Truncate(bg, x, "")
		right := ansi.Cut(bg, x+ansi.StringWidth(row), ansi.StringWidth(bg))
		out[idx] = left + row + right
	}
	return out
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
