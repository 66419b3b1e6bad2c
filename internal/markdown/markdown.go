// Package markdown renders the small markdown subset used in page copy
// (paragraphs, headings, lists, emphasis, code spans, links) as styled
// terminal text.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	parserOnce sync.Once
	parserInst goldmark.Markdown
)

func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInst = goldmark.New()
	})
	return parserInst
}

// Theme holds the styles applied to markdown elements.
type Theme struct {
	Text    lipgloss.Style
	Heading lipgloss.Style
	Code    lipgloss.Style
	Link    lipgloss.Style
	Bullet  lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultTheme matches the site palette.
func DefaultTheme() Theme {
	return Theme{
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Code:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00D4FF")),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00D4FF")).Underline(true),
		Bullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00D4FF")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Render converts markdown to terminal text wrapped at width columns.
func Render(src string, width int) string {
	return RenderWith(src, width, DefaultTheme())
}

// RenderWith is Render with an explicit theme.
func RenderWith(src string, width int, theme Theme) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	source := []byte(src)
	doc := parser().Parser().Parse(text.NewReader(source))

	r := &renderer{source: source, width: width, theme: theme}
	_ = ast.Walk(doc, r.walk)
	return strings.TrimRight(r.out.String(), "\n")
}

type listState struct {
	ordered bool
	index   int
}

type renderer struct {
	source []byte
	width  int
	theme  Theme

	out    strings.Builder
	inline strings.Builder

	bold   int
	italic int
	links  int

	lists  []listState
	bullet string
}

func (r *renderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			r.inline.Reset()
			return ast.WalkContinue, nil
		}
		r.flush(nil)
		if len(r.lists) == 0 {
			r.out.WriteString("\n")
		}

	case *ast.Heading:
		if entering {
			r.inline.Reset()
			return ast.WalkContinue, nil
		}
		r.flush(&r.theme.Heading)
		r.out.WriteString("\n")

	case *ast.List:
		if entering {
			r.lists = append(r.lists, listState{ordered: n.IsOrdered(), index: n.Start - 1})
			return ast.WalkContinue, nil
		}
		r.lists = r.lists[:len(r.lists)-1]
		if len(r.lists) == 0 {
			r.out.WriteString("\n")
		}

	case *ast.ListItem:
		if entering {
			top := &r.lists[len(r.lists)-1]
			top.index++
			if top.ordered {
				r.bullet = strconv.Itoa(top.index) + ". "
			} else {
				r.bullet = "• "
			}
		}

	case *ast.Text:
		if !entering {
			return ast.WalkContinue, nil
		}
		r.inline.WriteString(r.inlineStyle().Render(string(n.Segment.Value(r.source))))
		switch {
		case n.HardLineBreak():
			r.inline.WriteString("\n")
		case n.SoftLineBreak():
			r.inline.WriteString(" ")
		}

	case *ast.String:
		if entering {
			r.inline.WriteString(r.inlineStyle().Render(string(n.Value)))
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if n.Level >= 2 {
			r.bold += delta
		} else {
			r.italic += delta
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					code.Write(t.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(r.theme.Code.Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			r.links++
			return ast.WalkContinue, nil
		}
		r.links--
		r.inline.WriteString(r.theme.Muted.Render(" (" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		if entering {
			r.inline.WriteString(r.theme.Link.Render(string(n.URL(r.source))))
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

func (r *renderer) inlineStyle() lipgloss.Style {
	style := r.theme.Text
	if r.links > 0 {
		style = r.theme.Link
	}
	if r.bold > 0 {
		style = style.Bold(true).Foreground(lipgloss.Color("255"))
	}
	if r.italic > 0 {
		style = style.Italic(true)
	}
	return style
}

// flush wraps the collected inline text and writes it, prefixed by the
// pending list bullet if any.
func (r *renderer) flush(style *lipgloss.Style) {
	content := r.inline.String()
	r.inline.Reset()
	if content == "" {
		return
	}

	indent := 0
	if len(r.lists) > 0 {
		indent = 2 * len(r.lists)
	}
	width := r.width - indent
	if width < 10 {
		width = 10
	}
	if r.width > 0 {
		content = ansi.Wrap(content, width, "")
	}
	for i, line := range strings.Split(content, "\n") {
		if style != nil {
			line = style.Render(line)
		}
		switch {
		case i == 0 && r.bullet != "":
			pad := strings.Repeat(" ", max(indent-ansi.StringWidth(r.bullet), 0))
			r.out.WriteString(pad + r.theme.Bullet.Render(r.bullet) + line)
			r.bullet = ""
		default:
			r.out.WriteString(strings.Repeat(" ", indent) + line)
		}
		r.out.WriteString("\n")
	}
}
