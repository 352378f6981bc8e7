package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-menu/internal/logging"
	"github.com/atomicstack/popup-menu/internal/logging/events"
	"github.com/atomicstack/popup-menu/internal/slug"
)

// Add appends an item whose slug is derived from text.
func (m *Menu) Add(text string, cb Callback) *Menu {
	return m.add(text, slug.Make(text), text, cb)
}

// AddSlug appends an item under an explicit slug. The slug is normalised;
// when that changes it, the raw form stays usable as a lookup key. A key with
// nothing left after normalisation is logged and skipped.
func (m *Menu) AddSlug(raw, text string, cb Callback) *Menu {
	return m.add(raw, slug.Make(raw), text, cb)
}

func (m *Menu) add(raw, key, text string, cb Callback) *Menu {
	// "" marks an empty selection, so it cannot name an item
	if key == "" {
		logging.Error(fmt.Errorf("add %q: %w", raw, ErrEmptySlug))
		return m
	}
	n := &node{
		item:     Item{Slug: key, Text: text},
		callback: cb,
	}
	if raw != key {
		n.item.Alias = raw
	}

	// an existing slug is replaced in place so its old node is not left behind
	_, replaced := m.nodes[key]
	if replaced {
		m.dropAliases(key)
		m.clearMarks(key)
	} else {
		m.order = append(m.order, key)
	}
	m.nodes[key] = n
	if n.item.Alias != "" {
		m.aliases[n.item.Alias] = key
	}
	events.Menu.Add(key, text, replaced)
	return m
}

// Remove deletes the item matching key, either as given or in slug form.
func (m *Menu) Remove(key string) error {
	n := m.lookup(key)
	if n == nil {
		return fmt.Errorf("remove %q: %w", key, ErrNotFound)
	}
	s := n.item.Slug
	m.events.Emit(EventRemove, s)
	m.order = removeString(m.order, s)
	delete(m.nodes, s)
	m.dropAliases(s)
	delete(m.aliases, key)
	m.clearMarks(s)
	events.Menu.Remove(s)
	return nil
}

// Clear removes every item.
func (m *Menu) Clear() *Menu {
	keys := make([]string, 0, len(m.order)+len(m.aliases))
	keys = append(keys, m.order...)
	for alias := range m.aliases {
		keys = append(keys, alias)
	}
	for _, key := range keys {
		// aliases resolve to slugs already removed earlier in this loop
		if err := m.Remove(key); err != nil && !errors.Is(err, ErrNotFound) {
			logging.Error(err)
		}
	}
	return m
}

// Item returns the item matching key.
func (m *Menu) Item(key string) (Item, bool) {
	n := m.lookup(key)
	if n == nil {
		return Item{}, false
	}
	return n.item, true
}

// Has reports whether key matches an item.
func (m *Menu) Has(key string) bool {
	return m.lookup(key) != nil
}

// ItemText returns the display text of the item matching key.
func (m *Menu) ItemText(key string) (string, error) {
	n := m.lookup(key)
	if n == nil {
		return "", fmt.Errorf("item text %q: %w", key, ErrNotFound)
	}
	return n.item.Text, nil
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.order)
}

// Slugs returns the item slugs in display order.
func (m *Menu) Slugs() []string {
	return append([]string(nil), m.order...)
}

// Items returns the items in display order.
func (m *Menu) Items() []Item {
	items := make([]Item, 0, len(m.order))
	for _, s := range m.order {
		items = append(items, m.nodes[s].item)
	}
	return items
}

func (m *Menu) lookup(key string) *node {
	if n, ok := m.nodes[key]; ok {
		return n
	}
	if s, ok := m.aliases[key]; ok {
		if n, ok := m.nodes[s]; ok {
			return n
		}
	}
	if n, ok := m.nodes[slug.Make(key)]; ok {
		return n
	}
	return nil
}

func (m *Menu) dropAliases(s string) {
	for alias, target := range m.aliases {
		if target == s {
			delete(m.aliases, alias)
		}
	}
}

func (m *Menu) clearMarks(s string) {
	if m.selected == s {
		m.selected = ""
	}
	if m.focused == s {
		m.focused = ""
	}
}

func (m *Menu) indexOf(s string) int {
	for i, v := range m.order {
		if v == s {
			return i
		}
	}
	return -1
}

func removeString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}
