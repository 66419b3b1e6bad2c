package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
	"github.com/gx1727/mi7site/internal/markdown"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/typewriter"
)

// InstallSnippet is typed out on the home page.
const InstallSnippet = `$ git clone https://github.com/gx1727/mi7soft-daemon.git
$ cd mi7soft-daemon && cargo build --release
$ ./target/release/mi7 start -c mi7.toml`

var exploreKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "explore features"))

// Home is the landing page.
type Home struct {
	install typewriter.Model
}

// NewHome builds the landing page.
func NewHome(opts Options) Home {
	return Home{install: typewriter.New(InstallSnippet, "bash", opts.typing()...)}
}

func (h Home) Route() route.Route { return route.Home }

func (h Home) TitleKey() string { return "home.hero.title" }

// Install exposes the install snippet block.
func (h Home) Install() typewriter.Model { return h.install }

func (h Home) Mount() (Page, tea.Cmd) {
	var cmd tea.Cmd
	h.install, cmd = h.install.Mount()
	return h, cmd
}

func (h Home) Unmount() Page {
	h.install = h.install.Unmount()
	return h
}

func (h Home) Reveal() Page {
	h.install = h.install.Reveal()
	return h
}

func (h Home) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, exploreKey) {
			return h, route.Navigate(route.Features)
		}
	case typewriter.TickMsg, typewriter.BlinkMsg:
		var cmd tea.Cmd
		h.install, cmd = h.install.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h Home) View(ctx Context) string {
	msgs := ctx.Messages
	theme := components.GetTheme()
	width := contentWidth(ctx.Width)

	badge := components.NewBadge(msgs.T("home.hero.badge")).View()

	ctas := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton(msgs.T("home.hero.cta_primary"), components.ButtonOptions{Focus: true}).View(),
		"  ",
		components.NewButton(msgs.T("home.hero.cta_secondary"), components.ButtonOptions{Variant: components.ButtonVariantSecondary}).View(),
	)
	top := lipgloss.JoinVertical(lipgloss.Center,
		badge,
		"",
		hero(msgs.T(h.TitleKey()), msgs.T("home.hero.subtitle"), width),
		"",
		ctas,
		theme.Muted.Render(route.RepoURL),
	)
	top = lipgloss.PlaceHorizontal(width, lipgloss.Center, top)

	installWidth := min(width, 76)
	install := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle(msgs.T("home.install.label")),
		h.install.SetWidth(installWidth).View(),
	)

	teaser := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle(msgs.T("home.teaser.title")),
		"",
		markdown.Render(msgs.T("home.teaser.body"), width),
	)

	return frame(ctx.Width, top, install, teaser)
}
