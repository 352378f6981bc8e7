package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	itemIndicator = "▌ "
	emptyText     = "(no items)"
	minInnerWidth = 8
)

// View renders the menu box, or "" while hidden.
func (m *Menu) View() string {
	if !m.visible {
		return ""
	}
	width := m.innerWidth()
	lines := make([]string, 0, len(m.order)+1)
	if m.title != "" {
		lines = append(lines, render(m.styles.Title, pad(m.title, width)))
	}
	if len(m.order) == 0 {
		lines = append(lines, render(m.styles.Empty, pad(emptyText, width)))
	}
	for _, s := range m.order {
		lines = append(lines, m.renderItem(m.nodes[s].item, width))
	}
	return render(m.styles.Border, strings.Join(lines, "\n"))
}

func (m *Menu) renderItem(item Item, width int) string {
	indicatorStyle, lineStyle := m.styles.ItemIndicator, m.styles.Item
	if item.Slug == m.selected {
		indicatorStyle, lineStyle = m.styles.SelectedItemIndicator, m.styles.SelectedItem
	}
	textWidth := width - ansi.StringWidth(itemIndicator)
	return render(indicatorStyle, itemIndicator) + render(lineStyle, pad(item.Text, textWidth))
}

// Size returns the rendered width and height in cells, zero while hidden.
func (m *Menu) Size() (int, int) {
	view := m.View()
	if view == "" {
		return 0, 0
	}
	return lipgloss.Width(view), lipgloss.Height(view)
}

// ItemAt maps a page cell to the item rendered there.
func (m *Menu) ItemAt(x, y int) (string, bool) {
	if !m.visible || len(m.order) == 0 {
		return "", false
	}
	left, top := m.contentOrigin()
	if m.title != "" {
		top++
	}
	if x < left || x >= left+m.innerWidth() {
		return "", false
	}
	row := y - top
	if row < 0 || row >= len(m.order) {
		return "", false
	}
	return m.order[row], true
}

// Contains reports whether the page cell lies inside the menu box.
func (m *Menu) Contains(x, y int) bool {
	w, h := m.Size()
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

func (m *Menu) contentOrigin() (int, int) {
	left, top := m.x, m.y
	if border := m.styles.Border; border != nil {
		left += border.GetBorderLeftSize() + border.GetPaddingLeft()
		top += border.GetBorderTopSize() + border.GetPaddingTop()
	}
	return left, top
}

func (m *Menu) innerWidth() int {
	if m.width > 0 {
		return m.width
	}
	width := ansi.StringWidth(m.title)
	if len(m.order) == 0 {
		if w := ansi.StringWidth(emptyText); w > width {
			width = w
		}
	}
	indicator := ansi.StringWidth(itemIndicator)
	for _, s := range m.order {
		if w := indicator + ansi.StringWidth(m.nodes[s].item.Text) + 1; w > width {
			width = w
		}
	}
	if width < minInnerWidth {
		width = minInnerWidth
	}
	return width
}

func pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}
	if gap := width - ansi.StringWidth(text); gap > 0 {
		text += strings.Repeat(" ", gap)
	}
	return text
}

func render(style *lipgloss.Style, value string) string {
	if style == nil {
		return value
	}
	return style.Render(value)
}
