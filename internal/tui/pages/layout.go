package pages

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
)

const (
	// maxContent caps the reading width on wide terminals.
	maxContent = 100
	// splitWidth is the content width from which showcases sit beside text.
	splitWidth = 90
	gutter     = 4
)

func contentWidth(width int) int {
	if width <= 0 {
		return maxContent
	}
	return max(min(width-gutter, maxContent), 20)
}

// frame centers content in the terminal width with a blank line around it.
func frame(width int, blocks ...string) string {
	body := strings.Join(blocks, "\n\n")
	if width <= 0 {
		return "\n" + body + "\n"
	}
	return lipgloss.NewStyle().Width(width).Padding(1, 0).Render(
		lipgloss.PlaceHorizontal(width, lipgloss.Center, body),
	)
}

// hero renders a centered title and subtitle.
func hero(title, subtitle string, width int) string {
	theme := components.GetTheme()
	t := theme.Title.Width(width).Align(lipgloss.Center).Render(title)
	if subtitle == "" {
		return t
	}
	s := theme.Subtitle.Width(width).Align(lipgloss.Center).Render(subtitle)
	return t + "\n\n" + s
}

func sectionTitle(text string) string {
	return components.GetTheme().Heading.Render(text)
}

// bullets renders an accent-dotted list.
func bullets(items []string, width int) string {
	theme := components.GetTheme()
	dot := theme.Accent.Render("•")
	lines := make([]string, 0, len(items))
	body := theme.Body.Width(max(width-2, 1))
	for _, item := range items {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, dot+" ", body.Render(item)))
	}
	return strings.Join(lines, "\n")
}

// split lays two blocks side by side when there is room, stacked otherwise.
// reverse swaps the sides, alternating showcases down a page.
func split(left, right string, width int, reverse bool) string {
	if width < splitWidth {
		return left + "\n\n" + right
	}
	half := (width - gutter) / 2
	l := lipgloss.NewStyle().Width(half).Render(left)
	r := lipgloss.NewStyle().Width(half).Render(right)
	if reverse {
		l, r = r, l
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, l, strings.Repeat(" ", gutter), r)
}

// halfWidth is the width a block gets inside split.
func halfWidth(width int) int {
	if width < splitWidth {
		return width
	}
	return (width - gutter) / 2
}

// linkLine renders "label  url".
func linkLine(label, url string) string {
	theme := components.GetTheme()
	return theme.Body.Render(label) + "  " + theme.Link.Render(url)
}
