package cmd

import "github.com/charmbracelet/lipgloss"

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faint     = lipgloss.NewStyle().Faint(true)
)
