package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/popup-menu/internal/action"
	"github.com/atomicstack/popup-menu/internal/input"
	"github.com/atomicstack/popup-menu/internal/menu"
	"github.com/atomicstack/popup-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	X            int
	Y            int
	Width        int
	Title        string
	SocketPath   string
	ExitOnSelect bool
	ShowFooter   bool
}

// Item is a configured menu entry. Slug may be empty, in which case it is
// derived from Text. Command, when set, is a tmux command run on selection.
type Item struct {
	Slug    string
	Text    string
	Command []string
}

// BuildMenu creates the menu widget and populates it from items.
func BuildMenu(cfg Config, items []Item) *menu.Menu {
	runner := action.NewRunner(cfg.SocketPath)
	widget := menu.New(menu.WithTitle(cfg.Title), menu.WithWidth(cfg.Width))
	for _, item := range items {
		key := item.Slug
		if key == "" {
			key = item.Text
		}
		widget.AddSlug(key, item.Text, runner.Callback(key, item.Command))
	}
	return widget.MoveTo(cfg.X, cfg.Y)
}

// Run bootstraps and executes the Bubble Tea program, returning the slug of
// the selected item or "" when the user quit without choosing.
func Run(cfg Config, items []Item) (string, error) {
	router := input.NewRouter()
	widget := BuildMenu(cfg, items).Mount(router)
	defer widget.Unmount()
	widget.Show()

	model := ui.NewModel(widget, router, ui.Options{
		ShowFooter:   cfg.ShowFooter,
		ExitOnSelect: cfg.ExitOnSelect,
	})
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return model.Selection(), nil
	}
	if err != nil {
		return "", fmt.Errorf("run program: %w", err)
	}
	return model.Selection(), nil
}
