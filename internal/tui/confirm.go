package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks before a destructive action; action runs on "y".
type confirmModel struct {
	message string
	action  tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
