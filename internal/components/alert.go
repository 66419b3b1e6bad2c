package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the alert color.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantError
	AlertVariantWarning
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
	// DismissHint is shown when Dismissible is set, e.g. "x: dismiss".
	DismissHint string
	Width       int
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		message: message,
		options: opts,
	}
}

// WithDismissible sets whether the alert can be dismissed
func (a *Alert) WithDismissible(dismissible bool, hint string) *Alert {
	a.options.Dismissible = dismissible
	a.options.DismissHint = hint
	return a
}

// WithWidth caps the rendered width including the border.
func (a *Alert) WithWidth(width int) *Alert {
	a.options.Width = width
	return a
}

// View renders the alert
func (a *Alert) View() string {
	theme := GetTheme()
	color := a.color(theme.Palette)

	var content []string
	if a.options.Title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Foreground(color).Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	if a.options.Dismissible && a.options.DismissHint != "" {
		content = append(content, theme.Muted.Render("["+a.options.DismissHint+"]"))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	if a.options.Width > 0 {
		style = style.Width(a.options.Width - style.GetHorizontalBorderSize())
	}
	return style.Render(strings.Join(content, "\n"))
}

func (a *Alert) color(p Palette) lipgloss.Color {
	switch a.options.Variant {
	case AlertVariantSuccess:
		return p.Success
	case AlertVariantError:
		return p.Error
	case AlertVariantWarning:
		return p.Warning
	default:
		return p.Accent
	}
}

// SuccessAlert creates a success alert
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess})
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError})
}

// WarningAlert creates a warning alert
func WarningAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantWarning})
}
