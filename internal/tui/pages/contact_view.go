package pages

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/components"
	"github.com/gx1727/mi7site/internal/contact"
	"github.com/gx1727/mi7site/internal/i18n"
	"github.com/gx1727/mi7site/internal/route"
)

type method struct {
	icon     string
	key      string
	url      string
	iconTone func(components.Palette) lipgloss.Color
}

var methods = []method{
	{icon: "◎", key: "issues", url: route.IssuesURL, iconTone: func(p components.Palette) lipgloss.Color { return p.Accent }},
	{icon: "✉", key: "discussions", url: route.DiscussionsURL, iconTone: func(p components.Palette) lipgloss.Color { return p.Highlight }},
	{icon: "@", key: "email", iconTone: func(components.Palette) lipgloss.Color { return lipgloss.Color("#C084FC") }},
}

func (c Contact) View(ctx Context) string {
	msgs := ctx.Messages
	theme := components.GetTheme()
	width := contentWidth(ctx.Width)

	contribute := lipgloss.JoinVertical(lipgloss.Center,
		theme.Muted.Render(msgs.T("contact.contribute.text")),
		theme.Link.Render(msgs.T("contact.contribute.link")+" → "+route.PullsURL),
	)

	return frame(ctx.Width,
		hero(msgs.T(c.TitleKey()), msgs.T("contact.subtitle"), width),
		methodCards(msgs, width),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, contribute),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, c.formView(msgs, formWidth(width))),
	)
}

func methodCards(msgs i18n.Messages, width int) string {
	theme := components.GetTheme()
	cardWidth := width
	wide := width >= 60
	if wide {
		cardWidth = (width - 2*(len(methods)-1)) / len(methods)
	}

	cards := make([]string, 0, 2*len(methods))
	for i, m := range methods {
		data := components.CardData{
			Icon:        lipgloss.NewStyle().Foreground(m.iconTone(theme.Palette)).Render(m.icon),
			Title:       msgs.T("contact.methods." + m.key + ".title"),
			Description: msgs.T("contact.methods." + m.key + ".description"),
		}
		if m.url != "" {
			data.Footer = theme.Link.Render(strings.TrimPrefix(m.url, "https://"))
		}
		if wide && i > 0 {
			cards = append(cards, "  ")
		}
		cards = append(cards, components.NewCard(data).WithWidth(cardWidth).View())
	}
	if wide {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (c Contact) formView(msgs i18n.Messages, width int) string {
	theme := components.GetTheme()
	p := theme.Palette
	errStyle := lipgloss.NewStyle().Foreground(p.Error)

	label := func(focus int, text string) string {
		if c.focus == focus {
			return theme.Accent.Bold(true).Render("› " + text)
		}
		return theme.Body.Render("  " + text)
	}
	fieldErr := func(field contact.Field) string {
		if fe, ok := c.errs.For(field); ok {
			return "\n  " + errStyle.Render(msgs.T(fe.MessageKey))
		}
		return ""
	}
	box := func(focus int, content string) string {
		border := p.Border
		if c.focus == focus {
			border = p.Accent
		}
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(border).
			MarginLeft(2).
			PaddingLeft(1).
			Render(content)
	}

	name := c.name
	name.Placeholder = msgs.T("contact.form.name_placeholder")
	email := c.email
	email.Placeholder = msgs.T("contact.form.email_placeholder")
	message := c.message
	message.Placeholder = msgs.T("contact.form.message_placeholder")

	subject := theme.Muted.Render(msgs.T("contact.form.subject_none"))
	if c.subject >= 0 {
		subject = theme.Body.Render(msgs.T(contact.Subjects()[c.subject].MessageKey()))
	}
	subject = "‹ " + subject + " ›  " + theme.Muted.Faint(true).Render(msgs.T("contact.form.subject_hint"))

	sections := []string{
		sectionTitle(msgs.T("contact.form.title")),
		"",
		label(focusName, msgs.T("contact.form.name")),
		box(focusName, name.View()) + fieldErr(contact.FieldName),
		"",
		label(focusEmail, msgs.T("contact.form.email")),
		box(focusEmail, email.View()) + fieldErr(contact.FieldEmail),
		"",
		label(focusSubject, msgs.T("contact.form.subject")),
		box(focusSubject, subject) + fieldErr(contact.FieldSubject),
		"",
		label(focusMessage, msgs.T("contact.form.message")),
		box(focusMessage, message.View()) + fieldErr(contact.FieldMessage),
		"",
		c.submitView(msgs),
	}
	if banner := c.bannerView(msgs, width-6); banner != "" {
		sections = append(sections, "", banner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Width(max(width-2, 10)).
		Render(strings.Join(sections, "\n"))
}

func (c Contact) submitView(msgs i18n.Messages) string {
	text := msgs.T("contact.form.submit")
	if c.machine.Status() == contact.StatusSubmitting {
		text = c.spinner.View() + " " + msgs.T("contact.form.submitting")
	}
	return "  " + components.NewButton(text, components.ButtonOptions{
		Disabled: !c.machine.CanSubmit(),
		Focus:    c.focus == focusSubmit,
	}).View()
}

func (c Contact) bannerView(msgs i18n.Messages, width int) string {
	var alert *components.Alert
	switch c.machine.Status() {
	case contact.StatusSuccess:
		alert = components.SuccessAlert(msgs.T("contact.form.success"))
	case contact.StatusError:
		alert = components.ErrorAlert(msgs.T("contact.form.error"))
	default:
		return ""
	}
	return alert.WithDismissible(true, msgs.T("contact.form.dismiss")).WithWidth(width).View()
}
