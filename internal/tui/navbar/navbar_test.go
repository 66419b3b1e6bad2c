package navbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/route"
)

func newModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	return New(i18n.MustDefault(), i18n.English, opts...)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSetScrollFlipsOncePerCrossing(t *testing.T) {
	m := newModel(t, WithScrollThreshold(2))

	offsets := []int{0, 1, 2, 3, 4, 10, 3, 2, 1, 0, 0, 5}
	var changes []int
	for _, off := range offsets {
		var changed bool
		m, changed = m.SetScroll(off)
		if changed {
			changes = append(changes, off)
		}
	}

	// down past the threshold, back over it, then down again
	assert.Equal(t, []int{3, 2, 5}, changes)
	assert.True(t, m.Scrolled())
}

func TestRouteChangeClosesMenu(t *testing.T) {
	m := newModel(t).SetWidth(60)
	require.True(t, m.Compact())

	m = m.ToggleMenu()
	require.True(t, m.MenuOpen())

	m = m.SetRoute(route.About)
	assert.False(t, m.MenuOpen())
	assert.Equal(t, route.About, m.Active())
}

func TestMenuToggleIgnoredWhenWide(t *testing.T) {
	m := newModel(t).SetWidth(120)
	assert.False(t, m.Compact())
	assert.False(t, m.ToggleMenu().MenuOpen())
}

func TestWideningClosesMenu(t *testing.T) {
	m := newModel(t).SetWidth(60).ToggleMenu()
	require.True(t, m.MenuOpen())
	assert.False(t, m.SetWidth(120).MenuOpen())
}

func TestToggleLanguage(t *testing.T) {
	m := newModel(t)
	m = m.ToggleLanguage()
	assert.Equal(t, i18n.Chinese, m.Locale())
	m = m.ToggleLanguage()
	assert.Equal(t, i18n.English, m.Locale())
}

func TestUpdateNavigationKeys(t *testing.T) {
	tests := []struct {
		key  rune
		want route.Route
	}{
		{'1', route.Home},
		{'2', route.Features},
		{'3', route.About},
		{'4', route.Contact},
		{'g', route.Contact},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			m := newModel(t)
			_, cmd, handled := m.Update(runeKey(tt.key))
			require.True(t, handled)
			require.NotNil(t, cmd)
			assert.Equal(t, route.NavigateMsg{Route: tt.want}, cmd())
		})
	}
}

func TestUpdateLanguageKeyEmitsLocale(t *testing.T) {
	m := newModel(t)
	m, cmd, handled := m.Update(runeKey('l'))
	require.True(t, handled)
	assert.Equal(t, i18n.Chinese, m.Locale())
	assert.Equal(t, LanguageMsg{Locale: i18n.Chinese}, cmd())
}

func TestUpdateMenuSelection(t *testing.T) {
	m := newModel(t).SetWidth(60)
	m, _, _ = m.Update(runeKey('m'))
	require.True(t, m.MenuOpen())
	assert.Equal(t, route.Home, m.MenuCursor())

	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, route.About, m.MenuCursor())

	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, cmd, handled := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, handled)
	assert.Equal(t, route.NavigateMsg{Route: route.Features}, cmd())
}

func TestUpdateEscClosesMenu(t *testing.T) {
	m := newModel(t).SetWidth(60).ToggleMenu()
	m, _, handled := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.False(t, m.MenuOpen())
}

func TestUpdateIgnoresOtherInput(t *testing.T) {
	m := newModel(t)
	_, cmd, handled := m.Update(runeKey('z'))
	assert.False(t, handled)
	assert.Nil(t, cmd)

	_, _, handled = m.Update(tea.WindowSizeMsg{Width: 10})
	assert.False(t, handled)
}

func TestViewWide(t *testing.T) {
	m := newModel(t).SetWidth(120).SetRoute(route.Features)
	view := ansi.Strip(m.View())

	for _, label := range []string{"MI7Soft", "Home", "Features", "About", "Contact", "Get Started", "English"} {
		assert.Contains(t, view, label)
	}
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 120)
	}
}

func TestViewCompactMenu(t *testing.T) {
	m := newModel(t).SetWidth(60)
	closed := ansi.Strip(m.View())
	assert.Contains(t, closed, "☰")
	assert.NotContains(t, closed, "Features")

	open := ansi.Strip(m.ToggleMenu().View())
	assert.Contains(t, open, "✕")
	assert.Contains(t, open, "› Home")
	assert.Contains(t, open, "Features")
	assert.Contains(t, open, "Get Started")
}

func TestViewScrolledIsShorter(t *testing.T) {
	m := newModel(t).SetWidth(120)
	tall := lipglossHeight(m.View())
	m, _ = m.SetScroll(10)
	assert.Less(t, lipglossHeight(m.View()), tall)
}

func TestViewLocalized(t *testing.T) {
	m := newModel(t).SetWidth(120).ToggleLanguage()
	view := ansi.Strip(m.View())
	assert.Contains(t, view, i18n.MustDefault().Messages(i18n.Chinese).T("nav.features"))
	assert.Contains(t, view, "中文")
}

func lipglossHeight(s string) int {
	return strings.Count(s, "\n") + 1
}
