package typewriter

import "github.com/charmbracelet/lipgloss"

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238"))

	headerStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("236"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	bodyStyle = lipgloss.NewStyle().Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D4FF"))

	dotRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	dotYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	dotGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)
