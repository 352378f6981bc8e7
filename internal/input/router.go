// Package input owns page-wide input capture. Widgets bind handlers to a
// Router instead of reaching for the terminal directly, so tests and
// multiple widgets can share or isolate it.
package input

import (
	"github.com/atomicstack/popup-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler receives page-wide key presses. Returning true consumes the key.
type KeyHandler func(tea.KeyMsg) bool

// ClickHandler receives page-level clicks that no widget consumed.
type ClickHandler func(tea.MouseMsg)

type binding[T any] struct {
	owner   string
	handler T
}

// Router fans key presses and page clicks out to bound owners.
type Router struct {
	keys   []binding[KeyHandler]
	clicks []binding[ClickHandler]
}

// NewRouter returns a router with nothing bound.
func NewRouter() *Router {
	return &Router{}
}

// BindKeys installs h as the key handler for owner, replacing any
// previous handler for the same owner.
func (r *Router) BindKeys(owner string, h KeyHandler) {
	r.keys = bind(r.keys, owner, h)
	events.Input.Bind("keys", owner)
}

// UnbindKeys removes owner's key handler. It is a no-op when none is bound.
func (r *Router) UnbindKeys(owner string) {
	var ok bool
	if r.keys, ok = unbind(r.keys, owner); ok {
		events.Input.Unbind("keys", owner)
	}
}

// KeyBound reports whether owner currently captures keys.
func (r *Router) KeyBound(owner string) bool {
	return indexOf(r.keys, owner) >= 0
}

// BindClick installs h as the page click handler for owner.
func (r *Router) BindClick(owner string, h ClickHandler) {
	r.clicks = bind(r.clicks, owner, h)
	events.Input.Bind("click", owner)
}

// UnbindClick removes owner's click handler. It is a no-op when none is bound.
func (r *Router) UnbindClick(owner string) {
	var ok bool
	if r.clicks, ok = unbind(r.clicks, owner); ok {
		events.Input.Unbind("click", owner)
	}
}

// ClickBound reports whether owner listens for page clicks.
func (r *Router) ClickBound(owner string) bool {
	return indexOf(r.clicks, owner) >= 0
}

// DispatchKey offers msg to key handlers in bind order and stops at the
// first one that consumes it.
func (r *Router) DispatchKey(msg tea.KeyMsg) bool {
	// handlers may unbind themselves while running
	snapshot := append([]binding[KeyHandler](nil), r.keys...)
	for _, b := range snapshot {
		if b.handler != nil && b.handler(msg) {
			return true
		}
	}
	return false
}

// DispatchClick delivers a page click to every click handler.
func (r *Router) DispatchClick(msg tea.MouseMsg) {
	snapshot := append([]binding[ClickHandler](nil), r.clicks...)
	for _, b := range snapshot {
		if b.handler != nil {
			b.handler(msg)
		}
	}
}

func bind[T any](list []binding[T], owner string, h T) []binding[T] {
	if idx := indexOf(list, owner); idx >= 0 {
		list[idx].handler = h
		return list
	}
	return append(list, binding[T]{owner: owner, handler: h})
}

func unbind[T any](list []binding[T], owner string) ([]binding[T], bool) {
	idx := indexOf(list, owner)
	if idx < 0 {
		return list, false
	}
	next := make([]binding[T], 0, len(list)-1)
	next = append(next, list[:idx]...)
	next = append(next, list[idx+1:]...)
	return next, true
}

func indexOf[T any](list []binding[T], owner string) int {
	for i, b := range list {
		if b.owner == owner {
			return i
		}
	}
	return -1
}
