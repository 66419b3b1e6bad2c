package navbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
)

type styles struct {
	bar       lipgloss.Style
	compact   lipgloss.Style
	brand     lipgloss.Style
	brandTail lipgloss.Style
	link      lipgloss.Style
	active    lipgloss.Style
	lang      lipgloss.Style
	cta       lipgloss.Style
	menu      lipgloss.Style
	cursor    lipgloss.Style
}

func newStyles() styles {
	p := components.GetTheme().Palette
	return styles{
		bar:       lipgloss.NewStyle().Padding(1, 2),
		compact:   lipgloss.NewStyle().Padding(0, 2).Background(p.Surface).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(p.Border),
		brand:     lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		brandTail: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		link:      lipgloss.NewStyle().Foreground(p.Muted),
		active:    lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		lang:      lipgloss.NewStyle().Foreground(p.Muted),
		cta:       lipgloss.NewStyle().Foreground(p.Accent).Border(lipgloss.RoundedBorder(), false, true).BorderForeground(p.Accent).Padding(0, 1),
		menu:      lipgloss.NewStyle().Padding(1, 4).Background(p.Background),
		cursor:    lipgloss.NewStyle().Foreground(p.Highlight),
	}
}
