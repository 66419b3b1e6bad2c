package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects between the filled and outlined looks.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button represents a clickable button component
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// Disabled reports whether the button ignores activation.
func (b *Button) Disabled() bool {
	return b.options.Disabled
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

func (b *Button) buildStyle() lipgloss.Style {
	p := GetTheme().Palette
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	switch {
	case b.options.Disabled:
		return style.Faint(true).Foreground(p.Muted).Background(p.Card)
	case b.options.Variant == ButtonVariantSecondary:
		style = style.Foreground(p.Accent).Background(p.Card)
	default:
		style = style.Foreground(p.Surface).Background(p.Accent)
	}
	if b.options.Focus {
		style = style.Underline(true)
		if b.options.Variant == ButtonVariantPrimary {
			style = style.Background(p.Highlight).Foreground(p.Text)
		}
	}
	return style
}
