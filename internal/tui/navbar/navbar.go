// Package navbar renders the top navigation bar: route links, language
// toggle, collapsible menu for narrow terminals and the call to action.
package navbar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/route"
)

const (
	DefaultScrollThreshold = 2
	DefaultBreakpoint      = 90
)

// LanguageMsg announces that the navbar switched locale.
type LanguageMsg struct {
	Locale i18n.Locale
}

// Model is the navbar state: active route, menu, scroll style and locale.
type Model struct {
	catalog *i18n.Catalog
	locale  i18n.Locale
	active  route.Route

	menuOpen   bool
	menuCursor int
	scrolled   bool

	threshold  int
	breakpoint int
	width      int

	keys KeyMap
}

// Option customises a Model.
type Option func(*Model)

// WithScrollThreshold sets the offset, in lines, past which the bar compacts.
func WithScrollThreshold(lines int) Option {
	return func(m *Model) {
		if lines >= 0 {
			m.threshold = lines
		}
	}
}

// WithBreakpoint sets the width below which links collapse into the menu.
func WithBreakpoint(cols int) Option {
	return func(m *Model) {
		if cols > 0 {
			m.breakpoint = cols
		}
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.keys = km
	}
}

// New creates a navbar on the home route.
func New(catalog *i18n.Catalog, locale i18n.Locale, opts ...Option) Model {
	m := Model{
		catalog:    catalog,
		locale:     locale,
		active:     route.Home,
		threshold:  DefaultScrollThreshold,
		breakpoint: DefaultBreakpoint,
		keys:       DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Active() route.Route { return m.active }

func (m Model) Locale() i18n.Locale { return m.locale }

func (m Model) MenuOpen() bool { return m.menuOpen }

func (m Model) Scrolled() bool { return m.scrolled }

func (m Model) Keys() KeyMap { return m.keys }

// MenuCursor is the route highlighted in the open menu.
func (m Model) MenuCursor() route.Route { return route.All()[m.menuCursor] }

// Compact reports whether the links are collapsed behind the menu toggle.
func (m Model) Compact() bool {
	return m.width > 0 && m.width < m.breakpoint
}

// SetWidth resizes the bar. Growing past the breakpoint closes the menu.
func (m Model) SetWidth(width int) Model {
	m.width = width
	if !m.Compact() {
		m.menuOpen = false
	}
	return m
}

// SetScroll records the page offset and reports whether the compact style
// flipped. Repeated offsets on the same side of the threshold report false.
func (m Model) SetScroll(offset int) (Model, bool) {
	scrolled := offset > m.threshold
	changed := scrolled != m.scrolled
	m.scrolled = scrolled
	return m, changed
}

// SetRoute marks r active and closes the menu.
func (m Model) SetRoute(r route.Route) Model {
	m.active = r
	m.menuOpen = false
	m.menuCursor = max(r.Index(), 0)
	return m
}

// ToggleMenu opens or closes the collapsed menu. It is a no-op while the
// links are laid out inline.
func (m Model) ToggleMenu() Model {
	if !m.Compact() {
		m.menuOpen = false
		return m
	}
	m.menuOpen = !m.menuOpen
	m.menuCursor = max(m.active.Index(), 0)
	return m
}

// ToggleLanguage flips between the two supported locales.
func (m Model) ToggleLanguage() Model {
	m.locale = m.locale.Toggle()
	return m
}

// SetLocale forces the locale.
func (m Model) SetLocale(loc i18n.Locale) Model {
	m.locale = loc
	return m
}

// Update handles navbar key bindings. The returned bool reports whether the
// key was consumed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	if m.menuOpen {
		routes := route.All()
		switch {
		case key.Matches(keyMsg, m.keys.Up):
			m.menuCursor = (m.menuCursor - 1 + len(routes)) % len(routes)
			return m, nil, true
		case key.Matches(keyMsg, m.keys.Down):
			m.menuCursor = (m.menuCursor + 1) % len(routes)
			return m, nil, true
		case key.Matches(keyMsg, m.keys.Select):
			return m, route.Navigate(routes[m.menuCursor]), true
		case key.Matches(keyMsg, m.keys.Close):
			m.menuOpen = false
			return m, nil, true
		}
	}

	switch {
	case key.Matches(keyMsg, m.keys.Home):
		return m, route.Navigate(route.Home), true
	case key.Matches(keyMsg, m.keys.Features):
		return m, route.Navigate(route.Features), true
	case key.Matches(keyMsg, m.keys.About):
		return m, route.Navigate(route.About), true
	case key.Matches(keyMsg, m.keys.Contact), key.Matches(keyMsg, m.keys.GetStarted):
		return m, route.Navigate(route.Contact), true
	case key.Matches(keyMsg, m.keys.Menu):
		return m.ToggleMenu(), nil, true
	case key.Matches(keyMsg, m.keys.Language):
		m = m.ToggleLanguage()
		loc := m.locale
		return m, func() tea.Msg { return LanguageMsg{Locale: loc} }, true
	}
	return m, nil, false
}
