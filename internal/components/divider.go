package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a horizontal separator line.
type Divider struct {
	width int
}

// NewDivider creates a divider of the given width.
func NewDivider(width int) *Divider {
	return &Divider{width: width}
}

// View renders the divider. A non-positive width renders nothing.
func (d *Divider) View() string {
	if d.width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(GetTheme().Palette.Border).
		Render(strings.Repeat("─", d.width))
}
