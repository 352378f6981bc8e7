// Package menu implements the popup menu widget: an ordered set of items
// keyed by slug, show/hide state, keyboard navigation and the notifications
// emitted when items are selected or removed.
//
// A Menu is built detached (New) and attached to a page with Mount, which
// installs a page click handler that hides the menu and ties keyboard capture
// to the menu's visibility. All methods run on the Bubble Tea update
// goroutine; nothing here blocks.
package menu

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/atomicstack/popup-menu/internal/emitter"
	"github.com/atomicstack/popup-menu/internal/input"
	"github.com/atomicstack/popup-menu/internal/slug"
	"github.com/atomicstack/popup-menu/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// Notification names emitted by a Menu. Each item additionally emits its own
// notification when activated, subscribed to with OnItem; item slugs never
// reach listeners of these names.
const (
	EventShow   = "show"
	EventHide   = "hide"
	EventSelect = "select"
	EventRemove = "remove"
)

var (
	// ErrNotFound is returned when a key matches no item.
	ErrNotFound = errors.New("menu item not found")
	// ErrInvalidDirection is returned by Move for anything other than
	// Previous or Next.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrEmptySlug is logged when an item key normalises to nothing.
	ErrEmptySlug = errors.New("menu item slug is empty")
)

// Callback runs after an item has been activated and its notifications
// have been emitted.
type Callback func()

// Item is the public view of a menu entry.
type Item struct {
	Slug  string
	Text  string
	Alias string
}

// node is the rendered element owned by the menu for one item.
type node struct {
	item     Item
	callback Callback
}

var menuSeq atomic.Uint64

// Menu is the popup widget.
type Menu struct {
	id      string
	events  *emitter.Emitter
	styles  *theme.Styles
	keys    KeyMap
	title   string
	width   int
	order   []string
	nodes   map[string]*node
	aliases map[string]string
	visible bool
	x, y    int

	selected string
	focused  string
	query    string

	router *input.Router
	subs   []emitter.Subscription
}

// Option customises a Menu at construction.
type Option func(*Menu)

// WithEmitter shares an existing notification table with the menu.
func WithEmitter(e *emitter.Emitter) Option {
	return func(m *Menu) {
		if e != nil {
			m.events = e
		}
	}
}

// WithTitle renders a heading above the items.
func WithTitle(title string) Option {
	return func(m *Menu) { m.title = title }
}

// WithWidth fixes the inner width of the menu box. Zero sizes it to fit.
func WithWidth(width int) Option {
	return func(m *Menu) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithStyles overrides the default theme.
func WithStyles(styles *theme.Styles) Option {
	return func(m *Menu) {
		if styles != nil {
			m.styles = styles
		}
	}
}

// WithKeyMap overrides the navigation key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Menu) { m.keys = keys }
}

// New builds a hidden, empty, unmounted menu.
func New(opts ...Option) *Menu {
	m := &Menu{
		id:      fmt.Sprintf("menu-%d", menuSeq.Add(1)),
		events:  emitter.New(),
		styles:  theme.Default(),
		keys:    DefaultKeyMap(),
		nodes:   make(map[string]*node),
		aliases: make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID identifies the menu as an input owner.
func (m *Menu) ID() string {
	return m.id
}

// Mount attaches the menu to a page: clicks the page does not route to an
// item hide the menu, and keyboard capture follows show/hide. Mounting an
// already mounted menu does nothing.
func (m *Menu) Mount(r *input.Router) *Menu {
	if r == nil || m.router != nil {
		return m
	}
	m.router = r
	r.BindClick(m.id, func(tea.MouseMsg) { m.Hide() })
	m.subs = append(m.subs,
		m.events.On(EventShow, func(emitter.Event) { m.bindKeyboardEvents() }),
		m.events.On(EventHide, func(emitter.Event) { m.unbindKeyboardEvents() }),
	)
	if m.visible {
		m.bindKeyboardEvents()
	}
	return m
}

// Unmount releases everything Mount installed.
func (m *Menu) Unmount() {
	if m.router == nil {
		return
	}
	for _, sub := range m.subs {
		m.events.Off(sub)
	}
	m.subs = nil
	m.router.UnbindClick(m.id)
	m.router.UnbindKeys(m.id)
	m.router = nil
}

// Mounted reports whether the menu is attached to a page.
func (m *Menu) Mounted() bool {
	return m.router != nil
}

func (m *Menu) bindKeyboardEvents() {
	if m.router == nil {
		return
	}
	m.router.BindKeys(m.id, m.HandleKey)
}

func (m *Menu) unbindKeyboardEvents() {
	if m.router == nil {
		return
	}
	m.router.UnbindKeys(m.id)
}

// On subscribes to a menu notification.
func (m *Menu) On(name string, fn emitter.Listener) emitter.Subscription {
	return m.events.On(name, fn)
}

// Once subscribes to the next occurrence of a menu notification.
func (m *Menu) Once(name string, fn emitter.Listener) emitter.Subscription {
	return m.events.Once(name, fn)
}

// OnItem subscribes to activations of the item matching key. The key is
// resolved like any other lookup; an unknown key is taken in slug form.
func (m *Menu) OnItem(key string, fn emitter.Listener) emitter.Subscription {
	s := slug.Make(key)
	if n := m.lookup(key); n != nil {
		s = n.item.Slug
	}
	return m.events.OnItem(s, fn)
}

// Off removes a subscription made with On, Once or OnItem.
func (m *Menu) Off(sub emitter.Subscription) {
	m.events.Off(sub)
}
