package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/popup-menu/internal/emitter"
	"github.com/atomicstack/popup-menu/internal/input"
	"github.com/atomicstack/popup-menu/internal/menu"
	"github.com/atomicstack/popup-menu/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the host page.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	ExitOnSelect bool
}

// Model implements the Bubble Tea model for the page hosting the menu.
type Model struct {
	menu         *menu.Menu
	router       *input.Router
	keys         pageKeyMap
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	exitOnSelect bool
	selection    string
	infoMsg      string
	errMsg       string
	quitting     bool

	handlers map[reflect.Type]msgHandler
	subs     []emitter.Subscription
}

// NewModel wires a mounted menu and its router into a page model.
func NewModel(widget *menu.Menu, router *input.Router, opts Options) *Model {
	if router == nil {
		router = input.NewRouter()
	}
	if widget == nil {
		widget = menu.New()
	}
	widget.Mount(router)
	m := &Model{
		menu:         widget,
		router:       router,
		keys:         defaultPageKeyMap(),
		showFooter:   opts.ShowFooter,
		exitOnSelect: opts.ExitOnSelect,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.subs = append(m.subs,
		widget.On(menu.EventSelect, m.onSelect),
		widget.On(menu.EventRemove, m.onRemove),
	)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, m.finishUpdate(cmd)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmd tea.Cmd) tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.clampMenu()
	return nil
}

func (m *Model) onSelect(evt emitter.Event) {
	m.selection = evt.Slug
	m.errMsg = ""
	if text, err := m.menu.ItemText(evt.Slug); err == nil {
		m.infoMsg = fmt.Sprintf("Selected %s", text)
	} else {
		m.infoMsg = fmt.Sprintf("Selected %s", evt.Slug)
	}
	if m.exitOnSelect {
		m.quitting = true
	}
}

func (m *Model) onRemove(evt emitter.Event) {
	if m.selection == evt.Slug {
		m.selection = ""
	}
}

// Selection returns the slug of the last selected item.
func (m *Model) Selection() string {
	return m.selection
}

// Menu exposes the hosted menu.
func (m *Model) Menu() *menu.Menu {
	return m.menu
}

// Close detaches the model from the menu's notifications.
func (m *Model) Close() {
	for _, sub := range m.subs {
		m.menu.Off(sub)
	}
	m.subs = nil
}
