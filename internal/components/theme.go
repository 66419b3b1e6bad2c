package components

import "github.com/charmbracelet/lipgloss"

// Palette holds the site colors.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Card       lipgloss.Color
	Accent     lipgloss.Color
	Highlight  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
}

// Theme groups the palette with the typography used across pages.
type Theme struct {
	Palette  Palette
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Link     lipgloss.Style
}

// DefaultPalette mirrors the dark site palette: cyan accent, pink highlight.
func DefaultPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#1A1A1A"),
		Surface:    lipgloss.Color("#121212"),
		Card:       lipgloss.Color("#242424"),
		Accent:     lipgloss.Color("#00D4FF"),
		Highlight:  lipgloss.Color("#FF006E"),
		Text:       lipgloss.Color("#F5F5F5"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Border:     lipgloss.Color("#3A3A3A"),
		Success:    lipgloss.Color("#22C55E"),
		Error:      lipgloss.Color("#EF4444"),
		Warning:    lipgloss.Color("#F59E0B"),
	}
}

// NewTheme derives the typography from a palette.
func NewTheme(p Palette) Theme {
	return Theme{
		Palette:  p,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Body:     lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Link:     lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
	}
}

var defaultTheme = NewTheme(DefaultPalette())

// GetTheme returns the site theme.
func GetTheme() Theme {
	return defaultTheme
}
