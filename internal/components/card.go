package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CardStyle defines the visual appearance of a Card component.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	IconStyle    lipgloss.Style
	// Width is the outer width of the card including its border.
	Width int
}

// DefaultCardStyle returns a default card style using the current theme.
func DefaultCardStyle() CardStyle {
	theme := GetTheme()
	return CardStyle{
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Palette.Border).
			Padding(0, 1),
		TitleStyle:   theme.Title,
		ContentStyle: theme.Muted,
		IconStyle:    theme.Accent,
		Width:        40,
	}
}

// CardData represents the content of a card.
type CardData struct {
	Title       string
	Description string
	Icon        string
	// Lines are rendered under the description, one per row.
	Lines []string
	// Footer is rendered last, typically a link or action hint.
	Footer string
}

// Card represents a reusable card component with customizable styling.
type Card struct {
	data  CardData
	style CardStyle
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{
		data:  data,
		style: DefaultCardStyle(),
	}
}

// WithWidth sets the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// ContentWidth is the width available inside border and padding.
func (c *Card) ContentWidth() int {
	w := c.style.Width - c.style.BorderStyle.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// View renders the card.
func (c *Card) View() string {
	inner := c.ContentWidth()
	var parts []string

	title := c.data.Title
	if c.data.Icon != "" {
		title = c.style.IconStyle.Render(c.data.Icon) + " " + c.style.TitleStyle.Render(title)
	} else if title != "" {
		title = c.style.TitleStyle.Render(title)
	}
	if title != "" {
		parts = append(parts, title)
	}
	if c.data.Description != "" {
		parts = append(parts, c.style.ContentStyle.Render(ansi.Wrap(c.data.Description, inner, "")))
	}
	for _, line := range c.data.Lines {
		parts = append(parts, ansi.Wrap(line, inner, ""))
	}
	if c.data.Footer != "" {
		parts = append(parts, c.data.Footer)
	}

	return c.style.BorderStyle.Width(inner + c.style.BorderStyle.GetHorizontalPadding()).Render(strings.Join(parts, "\n"))
}
