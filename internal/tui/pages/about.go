package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
	"github.com/gx1727/mi7site/internal/markdown"
	"github.com/gx1727/mi7site/internal/route"
)

// Stat is one of the project figures on the about page.
type Stat struct {
	Value    string
	LabelKey string
}

// Stats returns the project figures.
func Stats() []Stat {
	return []Stat{
		{Value: "v0.1.2", LabelKey: "about.stats.version"},
		{Value: "6MB", LabelKey: "about.stats.binary"},
		{Value: "Rust", LabelKey: "about.stats.language"},
	}
}

// About describes the project. It has no timers.
type About struct{}

// NewAbout builds the about page.
func NewAbout(Options) About {
	return About{}
}

func (a About) Route() route.Route { return route.About }

func (a About) TitleKey() string { return "about.hero.title" }

func (a About) Mount() (Page, tea.Cmd) { return a, nil }

func (a About) Unmount() Page { return a }

func (a About) Reveal() Page { return a }

func (a About) Update(tea.Msg) (Page, tea.Cmd) { return a, nil }

func (a About) View(ctx Context) string {
	msgs := ctx.Messages
	theme := components.GetTheme()
	width := contentWidth(ctx.Width)

	colors := []lipgloss.Color{theme.Palette.Accent, theme.Palette.Highlight, lipgloss.Color("#C084FC")}
	stats := Stats()
	cards := make([]string, len(stats))
	cardWidth := width
	if width >= 60 {
		cardWidth = (width - 2*(len(stats)-1)) / len(stats)
	}
	for i, s := range stats {
		value := lipgloss.NewStyle().Bold(true).Foreground(colors[i%len(colors)]).Render(s.Value)
		body := lipgloss.JoinVertical(lipgloss.Center, value, theme.Muted.Render(msgs.T(s.LabelKey)))
		cards[i] = components.NewCard(components.CardData{
			Lines: []string{lipgloss.PlaceHorizontal(cardWidth-4, lipgloss.Center, body)},
		}).WithWidth(cardWidth).View()
	}
	var statRow string
	if width >= 60 {
		row := make([]string, 0, 2*len(cards)-1)
		for i, c := range cards {
			if i > 0 {
				row = append(row, "  ")
			}
			row = append(row, c)
		}
		statRow = lipgloss.JoinHorizontal(lipgloss.Top, row...)
	} else {
		statRow = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	openSource := components.NewCard(components.CardData{
		Title: msgs.T("about.open_source.title"),
		Lines: []string{
			markdown.Render(msgs.T("about.open_source.body"), width-4),
			linkLine(msgs.T("about.links.github"), route.RepoURL),
			linkLine(msgs.T("about.links.issue"), route.IssuesURL),
		},
	}).WithWidth(width).View()

	license := lipgloss.JoinVertical(lipgloss.Center,
		theme.Muted.Render(msgs.T("about.license.text")),
		theme.Muted.Faint(true).Render(msgs.T("about.license.note")),
		theme.Link.Render(route.LicenseURL),
	)

	return frame(ctx.Width,
		hero(msgs.T(a.TitleKey()), msgs.T("about.hero.description"), width),
		statRow,
		openSource,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, license),
	)
}
