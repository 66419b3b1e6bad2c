package site

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
	"github.com/gx1727/mi7site/internal/tui/pages"
)

// View renders the shell.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	msgs := m.catalog.Messages(m.locale)
	if m.width == 0 {
		return msgs.T("site.loading")
	}

	parts := []string{m.navbar.View()}
	if banner := m.bannerView(); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, m.viewport.View(), m.helpView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) bannerView() string {
	if !m.tooSmall {
		return ""
	}
	msgs := m.catalog.Messages(m.locale)
	text := msgs.T("site.too_small", m.width, m.height, MinWidth, MinHeight)
	return components.WarningAlert(text).WithWidth(m.width).View()
}

func (m Model) helpView() string {
	return lipgloss.NewStyle().Padding(0, 1).Render(m.help.View(m.helpBindings()))
}

// content is what scrolls: the active page followed by the footer.
func (m Model) content() string {
	ctx := pages.Context{Messages: m.catalog.Messages(m.locale), Width: m.width}
	return m.page().View(ctx) + "\n" + m.footer.View(m.locale, m.width)
}

// refresh re-renders the scrolled content and fits the viewport between the
// navbar and the help line.
func (m Model) refresh() Model {
	m.navbar = m.navbar.SetLocale(m.locale)

	chrome := lipgloss.Height(m.navbar.View()) + lipgloss.Height(m.helpView())
	if banner := m.bannerView(); banner != "" {
		chrome += lipgloss.Height(banner)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 1)
	m.viewport.SetContent(m.content())
	return m
}

// Render draws the start page once for a non-interactive terminal: code
// blocks fully typed, navbar in its resting style, footer included.
func Render(opts Options, width int) string {
	m := New(opts)
	m.width = width
	m.navbar = m.navbar.SetWidth(width)

	p, _ := m.page().Update(tea.WindowSizeMsg{Width: width})
	m = m.setPage(m.active, p.Reveal())

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, m.navbar.View(), m.content()), "\n") + "\n"
}
