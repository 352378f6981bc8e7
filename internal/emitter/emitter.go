// Package emitter provides the named-notification table the menu composes
// in place of an inherited event emitter.
package emitter

import "sync"

// Event is the payload delivered to listeners. Slug is empty for
// notifications that are not about a particular item.
type Event struct {
	Name string
	Slug string
}

// Listener observes a notification.
type Listener func(Event)

// Subscription identifies a registered listener so it can be removed.
type Subscription struct {
	topic topic
	id    uint64
}

// topic keys the listener table. Item notifications live in their own
// space so an item slug can never collide with a fixed notification name.
type topic struct {
	name string
	item bool
}

// Name returns the notification the subscription listens to.
func (s Subscription) Name() string {
	return s.topic.name
}

// Item reports whether the subscription listens to an item notification.
func (s Subscription) Item() bool {
	return s.topic.item
}

type entry struct {
	id   uint64
	fn   Listener
	once bool
}

// Emitter dispatches notifications by name.
type Emitter struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[topic][]entry
}

// New returns an empty emitter.
func New() *Emitter {
	return &Emitter{listeners: make(map[topic][]entry)}
}

// On registers fn for the named notification.
func (e *Emitter) On(name string, fn Listener) Subscription {
	return e.add(topic{name: name}, fn, false)
}

// Once registers fn to run for the next emission of name only.
func (e *Emitter) Once(name string, fn Listener) Subscription {
	return e.add(topic{name: name}, fn, true)
}

// OnItem registers fn for the notification of the item with the given slug.
func (e *Emitter) OnItem(slug string, fn Listener) Subscription {
	return e.add(topic{name: slug, item: true}, fn, false)
}

func (e *Emitter) add(t topic, fn Listener, once bool) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[topic][]entry)
	}
	e.nextID++
	e.listeners[t] = append(e.listeners[t], entry{id: e.nextID, fn: fn, once: once})
	return Subscription{topic: t, id: e.nextID}
}

// Off removes a subscription. Removing one twice is a no-op.
func (e *Emitter) Off(sub Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(sub.topic, sub.id)
}

// OffAll drops every listener for name.
func (e *Emitter) OffAll(name string) {
	e.mu.Lock()
	delete(e.listeners, topic{name: name})
	e.mu.Unlock()
}

func (e *Emitter) removeLocked(t topic, id uint64) {
	list := e.listeners[t]
	for i, l := range list {
		if l.id != id {
			continue
		}
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(e.listeners, t)
		} else {
			e.listeners[t] = next
		}
		return
	}
}

// Listeners returns the number of listeners registered for name.
func (e *Emitter) Listeners(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[topic{name: name}])
}

// ItemListeners returns the number of listeners registered for an item slug.
func (e *Emitter) ItemListeners(slug string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[topic{name: slug, item: true}])
}

// Emit calls every listener registered for name, in registration order.
// Listeners added while the emission runs are not called for it.
func (e *Emitter) Emit(name, slug string) {
	e.dispatch(topic{name: name}, slug)
}

// EmitItem calls the listeners registered with OnItem for slug. Listeners
// of fixed notifications are never reached, whatever the slug.
func (e *Emitter) EmitItem(slug string) {
	e.dispatch(topic{name: slug, item: true}, slug)
}

func (e *Emitter) dispatch(t topic, slug string) {
	e.mu.Lock()
	snapshot := append([]entry(nil), e.listeners[t]...)
	for _, l := range snapshot {
		if l.once {
			e.removeLocked(t, l.id)
		}
	}
	e.mu.Unlock()

	evt := Event{Name: t.name, Slug: slug}
	for _, l := range snapshot {
		if l.fn != nil {
			l.fn(evt)
		}
	}
}
