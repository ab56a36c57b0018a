package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	tabStyle        = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)
