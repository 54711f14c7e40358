package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the model.
type Styles struct {
	Title    lipgloss.Style
	Ghost    lipgloss.Style
	Term     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Pager    lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Ghost:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Term:     lipgloss.NewStyle().Bold(true),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("42")).Bold(true),
		Pager:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NoColorStyles returns styles without colors, for NO_COLOR terminals.
func NoColorStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Ghost:    lipgloss.NewStyle(),
		Term:     lipgloss.NewStyle().Bold(true),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true),
		Pager:    lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
	}
}
