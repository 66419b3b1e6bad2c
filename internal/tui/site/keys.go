package site

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the shell actions. Page and navbar bindings come on top.
type KeyMap struct {
	NextPage  key.Binding
	PrevPage  key.Binding
	Scroll    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPage:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpKeys adapts the active bindings to help.KeyMap with localized text.
type helpKeys struct {
	bindings []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding { return h.bindings }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.bindings} }

func localized(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

func (m Model) helpBindings() helpKeys {
	msgs := m.catalog.Messages(m.locale)
	if pk, ok := m.page().(interface{ ShortHelp() []key.Binding }); ok && m.capturing() {
		return helpKeys{bindings: pk.ShortHelp()}
	}

	nav := m.navbar.Keys()
	bindings := []key.Binding{
		localized(m.keys.NextPage, msgs.T("site.help.next_page")),
		localized(m.keys.Scroll, msgs.T("site.help.scroll")),
		localized(key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "")), msgs.T("site.help.open")),
		localized(nav.Language, msgs.T("site.help.language")),
	}
	if m.navbar.Compact() {
		bindings = append(bindings, localized(nav.Menu, msgs.T("site.help.menu")))
	}
	if pk, ok := m.page().(interface{ ShortHelp() []key.Binding }); ok {
		bindings = append(bindings, pk.ShortHelp()...)
	}
	return helpKeys{bindings: append(bindings, localized(m.keys.Quit, msgs.T("site.help.quit")))}
}
