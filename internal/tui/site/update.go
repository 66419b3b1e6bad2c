package site

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/tui/navbar"
	"github.com/gx1727/mi7site/internal/tui/pages"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mountMsg:
		p, cmd := m.page().Mount()
		m = m.setPage(m.active, p)
		m.log.WithFields(map[string]any{"route": string(m.active), "locale": m.locale.String()}).Info("site started")
		return m.refresh(), cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < MinWidth || m.height < MinHeight
		m.navbar = m.navbar.SetWidth(m.width)
		m.help.Width = m.width
		var cmd tea.Cmd
		m, cmd = m.broadcast(msg)
		return m.refresh(), cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m.syncScroll(), cmd

	case route.NavigateMsg:
		return m.navigate(msg.Route)

	case navbar.LanguageMsg:
		m.locale = msg.Locale
		m.log.With("locale", m.locale.String()).Info("locale changed")
		return m.refresh(), nil
	}

	m, cmd := m.broadcast(msg)
	return m.refresh(), cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.capturing() {
		p, cmd := m.page().Update(msg)
		m = m.setPage(m.active, p)
		return m.refresh(), cmd
	}

	var (
		cmd     tea.Cmd
		handled bool
	)
	m.navbar, cmd, handled = m.navbar.Update(msg)
	if handled {
		return m.refresh(), cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextPage):
		return m.navigate(m.active.Next())
	case key.Matches(msg, m.keys.PrevPage):
		return m.navigate(m.active.Prev())
	}

	p, cmd := m.page().Update(msg)
	m = m.setPage(m.active, p)
	if cmd != nil {
		return m.refresh(), cmd
	}

	// keys the page ignored scroll the viewport
	m.viewport, cmd = m.viewport.Update(msg)
	return m.syncScroll(), cmd
}

// navigate unmounts the current page and mounts r from a fresh start. The
// active page is never remounted; selecting it again only returns to the top.
func (m Model) navigate(r route.Route) (tea.Model, tea.Cmd) {
	if r.Index() < 0 {
		return m, nil
	}
	from := m.active
	if from == r {
		m.navbar = m.navbar.SetRoute(r)
		m = m.refresh()
		m.viewport.GotoTop()
		return m.syncScroll(), nil
	}
	m = m.setPage(from, m.page().Unmount())

	m.active = r
	m.navbar = m.navbar.SetRoute(r)
	p, cmd := m.page().Mount()
	m = m.setPage(r, p)

	m = m.refresh()
	m.viewport.GotoTop()
	m = m.syncScroll()

	m.log.WithFields(map[string]any{"from": string(from), "to": string(r)}).Info("route changed")
	return m, cmd
}

// broadcast hands msg to every page. Pages drop what is not theirs, and
// results such as a finished submission reach their page after the visitor
// navigated away.
func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	next := make([]pages.Page, len(m.pages))
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for i, p := range m.pages {
		var cmd tea.Cmd
		next[i], cmd = p.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.pages = next
	return m, tea.Batch(cmds...)
}

func (m Model) syncScroll() Model {
	var changed bool
	m.navbar, changed = m.navbar.SetScroll(m.viewport.YOffset)
	if changed {
		m.log.With("scrolled", m.navbar.Scrolled()).Debug("navbar style changed")
		// the compact bar is shorter, so the viewport grows or shrinks
		return m.refresh()
	}
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	m.log.Info("site closed")
	return m, tea.Quit
}
