package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle          = lipgloss.NewStyle().Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	helpStyle         = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	genuineStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	unregisteredStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle     = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
