package menu

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/popup-menu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Direction names a neighbour for Move.
type Direction string

const (
	Previous Direction = "previous"
	Next     Direction = "next"
)

// ParseDirection validates a direction supplied as text.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Previous, Next:
		return d, nil
	}
	return "", fmt.Errorf("direction %q: %w", s, ErrInvalidDirection)
}

// KeyMap lists the keys a visible menu captures.
type KeyMap struct {
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Erase    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Erase:    key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
	}
}

// ShortHelp lists the bindings shown in a footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Close}
}

// Move shifts the selected state to the neighbouring item. With nothing
// selected the first item is selected. Moving past either end is a no-op.
func (m *Menu) Move(dir Direction) error {
	var delta int
	switch dir {
	case Previous:
		delta = -1
	case Next:
		delta = 1
	default:
		return fmt.Errorf("move %q: %w", string(dir), ErrInvalidDirection)
	}
	if len(m.order) == 0 {
		return nil
	}
	from := m.selected
	target := 0
	if idx := m.indexOf(from); idx >= 0 {
		target = idx + delta
		if target < 0 || target >= len(m.order) {
			return nil
		}
	}
	m.selectSlug(m.order[target])
	events.Menu.Move(string(dir), from, m.selected)
	return nil
}

func (m *Menu) selectSlug(s string) {
	m.selected = s
	m.focused = s
}

// Selected returns the slug carrying the selected state, or "".
func (m *Menu) Selected() string {
	return m.selected
}

// Focused returns the slug of the item that Enter activates, or "".
func (m *Menu) Focused() string {
	return m.focused
}

// Hover records the pointer moving over an item: any selected state is
// cleared.
func (m *Menu) Hover(id string) {
	if m.lookup(id) == nil {
		return
	}
	m.selected = ""
}

// HandleKey is the keyboard handler bound while the menu is visible.
// Escape hides the menu, Up and Down move the selection, Enter activates
// the focused item and printable runes jump to the best matching item.
func (m *Menu) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.Hide()
		return true
	case key.Matches(msg, m.keys.Up):
		m.query = ""
		_ = m.Move(Previous)
		return true
	case key.Matches(msg, m.keys.Down):
		m.query = ""
		_ = m.Move(Next)
		return true
	case key.Matches(msg, m.keys.Activate):
		target := m.focused
		if target == "" {
			target = m.selected
		}
		if target == "" {
			return false
		}
		return m.Click(target)
	case key.Matches(msg, m.keys.Erase):
		if m.query == "" {
			return false
		}
		runes := []rune(m.query)
		m.typeAhead(string(runes[:len(runes)-1]))
		return true
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		m.typeAhead(m.query + string(msg.Runes))
		return true
	}
	return false
}

// Query returns the pending type-ahead text.
func (m *Menu) Query() string {
	return m.query
}

func (m *Menu) typeAhead(query string) {
	m.query = query
	if strings.TrimSpace(query) == "" {
		return
	}
	if idx := bestMatchIndex(m.Items(), query); idx >= 0 {
		m.selectSlug(m.order[idx])
		events.Menu.TypeAhead(query, m.selected)
	}
}

func bestMatchIndex(items []Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Text, trimmed) || strings.EqualFold(item.Slug, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Text), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Text), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Text
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

// Click runs an item's activation path: the menu hides, then "select" and
// the slug-named notification fire, then the item's callback runs. It
// returns false when id matches no item so the click can fall through to
// the page.
func (m *Menu) Click(id string) bool {
	n := m.lookup(id)
	if n == nil {
		return false
	}
	s := n.item.Slug
	cb := n.callback
	m.Hide()
	events.Menu.Select(s)
	m.events.Emit(EventSelect, s)
	m.events.EmitItem(s)
	if cb != nil {
		cb()
	}
	return true
}

// SetInput activates an item programmatically, exactly as a click would.
// Unknown ids are ignored.
func (m *Menu) SetInput(id string) {
	m.Click(id)
}

// KeyMap returns the bindings the menu captures while visible.
func (m *Menu) KeyMap() KeyMap {
	return m.keys
}
