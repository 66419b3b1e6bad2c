// Package site is the root Bubble Tea model: navbar on top, the active page
// in a scrollable viewport with the footer under it, and a key help line.
package site

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/logger"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/tui/footer"
	"github.com/gx1727/mi7site/internal/tui/navbar"
	"github.com/gx1727/mi7site/internal/tui/pages"
)

// Minimum terminal size before the shell warns.
const (
	MinWidth  = 60
	MinHeight = 20
)

// Options configures the shell.
type Options struct {
	Catalog *i18n.Catalog
	Locale  i18n.Locale
	Start   route.Route
	Pages   pages.Options

	ScrollThreshold int
	MenuBreakpoint  int

	Logger *logger.Logger
	// Now feeds the footer's copyright year.
	Now func() time.Time
	// Cancel is called on quit to abort in-flight submissions.
	Cancel context.CancelFunc
}

// Model is the site shell.
type Model struct {
	catalog *i18n.Catalog
	locale  i18n.Locale
	active  route.Route
	pages   []pages.Page

	navbar   navbar.Model
	footer   footer.Footer
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	width    int
	height   int
	tooSmall bool
	quitting bool

	log    *logger.Logger
	cancel context.CancelFunc
}

// New builds the shell on opts.Start, defaulting to the home page.
func New(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = i18n.MustDefault()
	}
	if opts.Locale == "" {
		opts.Locale = i18n.English
	}
	if opts.Start.Index() < 0 {
		opts.Start = route.Home
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Pages.Logger == nil {
		opts.Pages.Logger = opts.Logger
	}

	m := Model{
		catalog: opts.Catalog,
		locale:  opts.Locale,
		active:  opts.Start,
		pages:   pages.All(opts.Pages),
		navbar: navbar.New(opts.Catalog, opts.Locale,
			navbar.WithScrollThreshold(opts.ScrollThreshold),
			navbar.WithBreakpoint(opts.MenuBreakpoint),
		).SetRoute(opts.Start),
		footer:   footer.New(opts.Catalog, opts.Now),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		log:      opts.Logger.With("component", "site"),
		cancel:   opts.Cancel,
	}
	return m.refresh()
}

// Init asks Update to mount the start page, since Init cannot keep the
// mounted page.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

type mountMsg struct{}

func (m Model) Active() route.Route { return m.active }

func (m Model) Locale() i18n.Locale { return m.locale }

func (m Model) Navbar() navbar.Model { return m.navbar }

func (m Model) TooSmall() bool { return m.tooSmall }

// Page returns the page registered for r.
func (m Model) Page(r route.Route) pages.Page {
	return m.pages[r.Index()]
}

func (m Model) page() pages.Page {
	return m.pages[m.active.Index()]
}

func (m Model) capturing() bool {
	c, ok := m.page().(pages.InputCapturer)
	return ok && c.Capturing()
}

func (m Model) setPage(r route.Route, p pages.Page) Model {
	next := make([]pages.Page, len(m.pages))
	copy(next, m.pages)
	next[r.Index()] = p
	m.pages = next
	return m
}
