// Package footer renders the static site footer.
package footer

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/route"
)

// Link is either internal (Route set) or external (URL set).
type Link struct {
	LabelKey string
	Label    string
	Route    route.Route
	URL      string
}

// Group is a titled column of links.
type Group struct {
	TitleKey string
	Links    []Link
}

// Groups returns the footer columns in display order.
func Groups() []Group {
	return []Group{
		{
			TitleKey: "footer.product",
			Links: []Link{
				{LabelKey: "footer.links.features", Route: route.Features},
				{LabelKey: "footer.links.integrations", Route: route.Features},
				{LabelKey: "footer.links.performance", Route: route.Features},
			},
		},
		{
			TitleKey: "footer.company",
			Links: []Link{
				{LabelKey: "footer.links.about_us", Route: route.About},
				{LabelKey: "footer.links.careers", Route: route.About},
				{LabelKey: "footer.links.contact", Route: route.Contact},
			},
		},
		{
			TitleKey: "footer.connect",
			Links: []Link{
				{Label: "GitHub", URL: route.RepoURL},
				{Label: "Issues", URL: route.IssuesURL},
				{Label: "Discussions", URL: route.DiscussionsURL},
			},
		},
	}
}

// wideLayout is the width from which groups sit side by side.
const wideLayout = 90

// Footer renders the footer for a locale.
type Footer struct {
	catalog *i18n.Catalog
	now     func() time.Time
}

// New creates a Footer. now defaults to time.Now and only feeds the
// copyright year.
func New(catalog *i18n.Catalog, now func() time.Time) Footer {
	if now == nil {
		now = time.Now
	}
	return Footer{catalog: catalog, now: now}
}

// Year is the year printed in the copyright line.
func (f Footer) Year() int {
	return f.now().Year()
}

// View renders the footer at the given width.
func (f Footer) View(loc i18n.Locale, width int) string {
	msgs := f.catalog.Messages(loc)
	theme := components.GetTheme()

	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.Palette.Text)
	linkStyle := theme.Muted
	urlStyle := lipgloss.NewStyle().Foreground(theme.Palette.Border)

	wide := width >= wideLayout
	colWidth := 0
	if wide {
		colWidth = (width - 4) / 3
	}

	blurbWidth := width - 4
	if wide {
		blurbWidth = colWidth - 2
	}
	brand := "◆ " + heading.Render("MI7") + theme.Accent.Bold(true).Render("Soft")
	blurb := linkStyle.Width(max(blurbWidth, 20)).Render(msgs.T("footer.blurb"))
	columns := []string{lipgloss.JoinVertical(lipgloss.Left, brand, "", blurb)}

	// Internal groups share a row; external links get full-width lines so
	// their URLs are never wrapped.
	var connect []string
	for _, g := range Groups() {
		lines := []string{heading.Render(msgs.T(g.TitleKey)), ""}
		external := false
		for _, l := range g.Links {
			label := l.Label
			if l.LabelKey != "" {
				label = msgs.T(l.LabelKey)
			}
			if l.URL != "" {
				external = true
				lines = append(lines, linkStyle.Render(label)+"  "+urlStyle.Render(l.URL))
				continue
			}
			lines = append(lines, linkStyle.Render(label))
		}
		if external {
			connect = lines
			continue
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}

	var body string
	if wide {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = lipgloss.NewStyle().Width(colWidth).Render(c)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	} else {
		body = strings.Join(columns, "\n\n")
	}
	if len(connect) > 0 {
		body += "\n\n" + strings.Join(connect, "\n")
	}

	legal := theme.Muted.Render(msgs.T("footer.privacy") + "   " + msgs.T("footer.terms"))
	copyright := theme.Muted.Render(msgs.T("footer.copyright", f.Year()))

	rule := components.NewDivider(width - 4).View()

	frame := lipgloss.NewStyle().Padding(1, 2)
	if width > 0 {
		frame = frame.Width(width)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", rule, copyright, legal))
}
