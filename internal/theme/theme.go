package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border                *lipgloss.Style
	Title                 *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Empty                 *lipgloss.Style
	Page                  *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Error                 *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Page: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set with every style empty, useful where output is
// compared as text.
func Plain() *Styles {
	empty := func() *lipgloss.Style { return ptr(lipgloss.NewStyle()) }
	return &Styles{
		Border:                ptr(lipgloss.NewStyle().Border(lipgloss.NormalBorder())),
		Title:                 empty(),
		Item:                  empty(),
		ItemIndicator:         empty(),
		SelectedItem:          empty(),
		SelectedItemIndicator: empty(),
		Empty:                 empty(),
		Page:                  empty(),
		Info:                  empty(),
		Footer:                empty(),
		Error:                 empty(),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
