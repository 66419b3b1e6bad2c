package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gx1727/mi7site/internal/route"
)

// View renders the bar, and the open menu underneath it when collapsed.
func (m Model) View() string {
	st := newStyles()
	msgs := m.catalog.Messages(m.locale)

	frame := st.bar
	if m.scrolled {
		frame = st.compact
	}
	inner := m.width - frame.GetHorizontalFrameSize()
	if m.width <= 0 {
		inner = 0
	}

	brand := "◆ " + st.brand.Render("MI7") + st.brandTail.Render("Soft")
	lang := st.lang.Render("⊕ " + m.locale.Name())

	var right string
	if m.Compact() {
		toggle := "☰"
		if m.menuOpen {
			toggle = "✕"
		}
		right = lang + "  " + st.brand.Render(toggle)
	} else {
		links := make([]string, 0, len(route.All()))
		for _, r := range route.All() {
			label := msgs.T(r.LabelKey())
			if r == m.active {
				links = append(links, st.active.Render(label))
			} else {
				links = append(links, st.link.Render(label))
			}
		}
		right = strings.Join(links, "   ") + "   " + lang + "  " + st.cta.Render(msgs.T("nav.get_started"))
	}

	row := spread(brand, right, inner)
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalBorderSize())
	}
	bar := frame.Render(row)

	if !m.Compact() || !m.menuOpen {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.menuView(st))
}

func (m Model) menuView(st styles) string {
	msgs := m.catalog.Messages(m.locale)
	lines := make([]string, 0, len(route.All())+2)
	for i, r := range route.All() {
		label := msgs.T(r.LabelKey())
		prefix := "  "
		if i == m.menuCursor {
			prefix = st.cursor.Render("› ")
		}
		if r == m.active {
			label = st.active.Render(label)
		} else {
			label = st.link.Render(label)
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", "  "+st.cta.Render(msgs.T("nav.get_started")))

	menu := st.menu
	if m.width > 0 {
		menu = menu.Width(m.width)
	}
	return menu.Render(strings.Join(lines, "\n"))
}

// spread places left and right at the two ends of a row of the given width,
// truncating the right side when both do not fit.
func spread(left, right string, width int) string {
	if width <= 0 {
		return left + "  " + right
	}
	lw := ansi.StringWidth(left)
	rw := ansi.StringWidth(right)
	if lw+1+rw > width {
		right = ansi.Truncate(right, max(width-lw-1, 0), "…")
		rw = ansi.StringWidth(right)
	}
	gap := max(width-lw-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}
