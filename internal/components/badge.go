package components

import "github.com/charmbracelet/lipgloss"

// Badge is a small outlined label, such as the license note above a hero.
type Badge struct {
	text  string
	color lipgloss.Color
}

// NewBadge creates a badge in the accent color.
func NewBadge(text string) *Badge {
	return &Badge{text: text, color: GetTheme().Palette.Accent}
}

// View renders the badge.
func (b *Badge) View() string {
	return lipgloss.NewStyle().
		Foreground(b.color).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(GetTheme().Palette.Border).
		Padding(0, 1).
		Render(b.text)
}
