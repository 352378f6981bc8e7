package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDispatchKeyStopsAtFirstConsumer(t *testing.T) {
	r := NewRouter()
	var order []string
	r.BindKeys("a", func(tea.KeyMsg) bool { order = append(order, "a"); return false })
	r.BindKeys("b", func(tea.KeyMsg) bool { order = append(order, "b"); return true })
	r.BindKeys("c", func(tea.KeyMsg) bool { order = append(order, "c"); return true })

	if !r.DispatchKey(tea.KeyMsg{Type: tea.KeyDown}) {
		t.Fatalf("expected key to be consumed")
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestBindKeysReplacesSameOwner(t *testing.T) {
	r := NewRouter()
	calls := 0
	r.BindKeys("menu", func(tea.KeyMsg) bool { t.Fatalf("stale handler called"); return false })
	r.BindKeys("menu", func(tea.KeyMsg) bool { calls++; return true })
	r.DispatchKey(tea.KeyMsg{Type: tea.KeyUp})
	if calls != 1 {
		t.Fatalf("expected replacement handler to run once, got %d", calls)
	}
}

func TestUnbindIsIdempotent(t *testing.T) {
	r := NewRouter()
	r.UnbindKeys("menu")
	r.BindKeys("menu", func(tea.KeyMsg) bool { return true })
	if !r.KeyBound("menu") {
		t.Fatalf("expected menu bound")
	}
	r.UnbindKeys("menu")
	r.UnbindKeys("menu")
	if r.KeyBound("menu") {
		t.Fatalf("expected menu unbound")
	}
	if r.DispatchKey(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Fatalf("expected no consumer after unbind")
	}
}

func TestDispatchClickReachesAllHandlers(t *testing.T) {
	r := NewRouter()
	hits := 0
	r.BindClick("one", func(tea.MouseMsg) { hits++ })
	r.BindClick("two", func(tea.MouseMsg) { hits++ })
	r.DispatchClick(tea.MouseMsg{X: 1, Y: 2})
	if hits != 2 {
		t.Fatalf("expected both click handlers, got %d", hits)
	}
	r.UnbindClick("one")
	if r.ClickBound("one") || !r.ClickBound("two") {
		t.Fatalf("unexpected click bindings after unbind")
	}
}

func TestHandlerMayUnbindItselfDuringDispatch(t *testing.T) {
	r := NewRouter()
	r.BindKeys("menu", func(tea.KeyMsg) bool {
		r.UnbindKeys("menu")
		return true
	})
	if !r.DispatchKey(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Fatalf("expected key consumed")
	}
	if r.KeyBound("menu") {
		t.Fatalf("expected handler to be unbound")
	}
}
