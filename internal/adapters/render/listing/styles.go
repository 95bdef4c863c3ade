package listing

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	column     lipgloss.Style
	cell       lipgloss.Style
	footer     lipgloss.Style
	empty      lipgloss.Style
	key        lipgloss.Style
	positive   lipgloss.Style
	warning    lipgloss.Style
	muted      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		column:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		footer:     lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("250")),
		empty:      lipgloss.NewStyle().Faint(true),
		key:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		positive:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
