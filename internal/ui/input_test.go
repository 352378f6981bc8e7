package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSpaceTogglesMenu(t *testing.T) {
	m, widget, router := newTestModel(t, Options{}, "Copy")
	h := NewHarness(m)
	h.Key(tea.KeySpace)
	if !widget.IsVisible() {
		t.Fatalf("expected space to open the menu")
	}
	if !router.KeyBound(widget.ID()) {
		t.Fatalf("expected keyboard capture while visible")
	}
	h.Key(tea.KeySpace)
	if widget.IsVisible() {
		t.Fatalf("expected space to close the menu")
	}
}

func TestQuitKeyWhileHidden(t *testing.T) {
	m, _, _ := newTestModel(t, Options{}, "Copy")
	h := NewHarness(m)
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit while the menu is hidden")
	}
}

func TestRunesGoToTypeAheadWhileVisible(t *testing.T) {
	m, widget, _ := newTestModel(t, Options{}, "Copy", "Quit Session")
	widget.Show()
	h := NewHarness(m)
	h.Type("q")
	if h.Quit() {
		t.Fatalf("expected q to be captured by the menu")
	}
	if widget.Selected() != "quit-session" {
		t.Fatalf("expected type-ahead selection, got %q", widget.Selected())
	}
}

func TestEscapeRemovesKeyboardCapture(t *testing.T) {
	m, widget, router := newTestModel(t, Options{}, "a", "b")
	widget.Show()
	h := NewHarness(m)
	h.Key(tea.KeyEsc)
	if widget.IsVisible() {
		t.Fatalf("expected escape to hide the menu")
	}
	if router.KeyBound(widget.ID()) {
		t.Fatalf("expected keyboard capture removed")
	}
	h.Key(tea.KeyDown)
	if widget.Selected() != "" {
		t.Fatalf("expected arrow down ignored once hidden, got %q", widget.Selected())
	}
}

func TestRightClickOpensMenuAtPointer(t *testing.T) {
	m, widget, _ := newTestModel(t, Options{Width: 80, Height: 24}, "one", "two")
	h := NewHarness(m)
	h.RightClick(10, 4)
	if !widget.IsVisible() {
		t.Fatalf("expected right click to open the menu")
	}
	if x, y := widget.Position(); x != 10 || y != 4 {
		t.Fatalf("expected menu at (10,4), got (%d,%d)", x, y)
	}
}

func TestRightClickNearEdgeIsClamped(t *testing.T) {
	m, widget, _ := newTestModel(t, Options{Width: 20, Height: 10}, "one", "two")
	h := NewHarness(m)
	h.RightClick(19, 9)
	w, hgt := widget.Size()
	x, y := widget.Position()
	if x+w > 20 || y+hgt > 10 {
		t.Fatalf("expected menu inside page, got (%d,%d) size %dx%d", x, y, w, hgt)
	}
}

func TestHoverClearsSelection(t *testing.T) {
	m, widget, _ := newTestModel(t, Options{}, "one", "two")
	widget.MoveTo(0, 0).Show()
	widget.Move("next")
	h := NewHarness(m)
	h.Hover(1, 2)
	if widget.Selected() != "" {
		t.Fatalf("expected hover to clear selection, got %q", widget.Selected())
	}
}

func TestClickItemActivatesIt(t *testing.T) {
	m, widget, _ := newTestModel(t, Options{ExitOnSelect: true}, "one", "two")
	widget.MoveTo(0, 0).Show()
	h := NewHarness(m)
	h.Click(1, 2)
	if m.Selection() != "two" {
		t.Fatalf("expected two selected, got %q", m.Selection())
	}
	if widget.IsVisible() {
		t.Fatalf("expected menu hidden after click")
	}
	if !h.Quit() {
		t.Fatalf("expected program to quit after selection")
	}
}

func TestClickOutsideHidesMenu(t *testing.T) {
	m, widget, _ := newTestModel(t, Options{}, "one")
	widget.MoveTo(0, 0).Show()
	h := NewHarness(m)
	h.Click(30, 10)
	if widget.IsVisible() {
		t.Fatalf("expected outside click to hide menu")
	}
	if m.Selection() != "" {
		t.Fatalf("expected no selection, got %q", m.Selection())
	}
}
