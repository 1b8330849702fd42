package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by all screens
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Tier     lipgloss.Style
	CardName lipgloss.Style
	Answer   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Tier:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		CardName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Answer:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 2),
	}
}
