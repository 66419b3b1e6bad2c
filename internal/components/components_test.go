package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetThemeUsesDefaultPalette(t *testing.T) {
	theme := GetTheme()
	assert.Equal(t, lipgloss.Color("#00D4FF"), theme.Palette.Accent)
	assert.Equal(t, DefaultPalette(), theme.Palette)
}

func TestCardRespectsWidth(t *testing.T) {
	card := NewCard(CardData{
		Title:       "Multi-Process Management",
		Icon:        "◆",
		Description: "Manage multiple processes from one declarative configuration file.",
		Lines:       []string{"• one", "• two"},
		Footer:      "github.com/gx1727/mi7soft-daemon",
	}).WithWidth(36)

	view := card.View()
	plain := ansi.Strip(view)
	for _, line := range strings.Split(plain, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 36, line)
	}
	assert.Contains(t, plain, "◆ Multi-Process")
	assert.Contains(t, plain, "• two")
	assert.Equal(t, 32, card.ContentWidth())
}

func TestCardContentWidthFloor(t *testing.T) {
	card := NewCard(CardData{Title: "x"}).WithWidth(2)
	assert.Equal(t, 1, card.ContentWidth())
}

func TestAlertView(t *testing.T) {
	view := ansi.Strip(NewAlert("Failed to send", AlertOptions{Variant: AlertVariantError, Title: "Error"}).
		WithDismissible(true, "x: dismiss").
		WithWidth(30).
		View())

	require.Contains(t, view, "Error")
	assert.Contains(t, view, "Failed to send")
	assert.Contains(t, view, "[x: dismiss]")
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 30, ansi.StringWidth(line))
	}
}

func TestAlertHidesHintWhenNotDismissible(t *testing.T) {
	view := ansi.Strip(SuccessAlert("Sent").WithDismissible(false, "x: dismiss").View())
	assert.NotContains(t, view, "dismiss")
}

func TestButtonStates(t *testing.T) {
	b := NewButton("Send Message", ButtonOptions{})
	assert.False(t, b.Disabled())
	assert.Contains(t, ansi.Strip(b.View()), "Send Message")

	b = NewButton("Send Message", ButtonOptions{Disabled: true, Focus: true})
	assert.True(t, b.Disabled())
	assert.Contains(t, ansi.Strip(b.View()), "Send Message")
}

func TestBadgeView(t *testing.T) {
	view := ansi.Strip(NewBadge("MIT").View())
	assert.Contains(t, view, "│ MIT │")
}

func TestDividerView(t *testing.T) {
	assert.Equal(t, "───", ansi.Strip(NewDivider(3).View()))
	assert.Empty(t, NewDivider(0).View())
}
