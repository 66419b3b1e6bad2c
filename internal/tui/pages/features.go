package pages

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/chart"
	"github.com/gx1727/mi7site/internal/components"
	"github.com/gx1727/mi7site/internal/route"
	"github.com/gx1727/mi7site/internal/typewriter"
	"github.com/gx1727/mi7site/pkg/diff"
)

// ConfigSnippet is the multi-process showcase.
const ConfigSnippet = `[processes.api]
command = "./api-server"
instances = 4
restart_policy = "always"

[processes.worker]
command = "./background-worker"
instances = 2
depends_on = ["api"]`

// ReloadedConfig is ConfigSnippet after the edit shown in the hot reload demo.
const ReloadedConfig = ConfigSnippet + `

[processes.cache]
command = "./cache-server"
instances = 2`

// FeatureID names a showcased feature; it is also its catalog key segment.
type FeatureID string

const (
	FeatureMultiProcess FeatureID = "multi_process"
	FeaturePerformance  FeatureID = "performance"
	FeatureHotReload    FeatureID = "hot_reload"
	FeatureAutoRestart  FeatureID = "auto_restart"
)

// FeatureIDs lists the features in page order.
func FeatureIDs() []FeatureID {
	return []FeatureID{FeatureMultiProcess, FeaturePerformance, FeatureHotReload, FeatureAutoRestart}
}

func (id FeatureID) key(field string) string {
	return "features.list." + string(id) + "." + field
}

func (id FeatureID) icon() string {
	switch id {
	case FeatureMultiProcess:
		return "▤"
	case FeaturePerformance:
		return "⚡"
	case FeatureHotReload:
		return "⟳"
	default:
		return "↻"
	}
}

// ReloadTranscript builds the hot reload terminal session from the diff
// between the two configurations.
func ReloadTranscript(lines []diff.Line) string {
	var b strings.Builder
	b.WriteString("$ mi7 reload\n> Configuration changes detected\n")
	for _, section := range diff.AddedSections(lines) {
		fmt.Fprintf(&b, "> Diff: + %s\n", section)
	}
	b.WriteString("> Spawning 2 new instances of 'cache'\n")
	b.WriteString("> Gracefully reloading 'api'\n")
	b.WriteString("> Done in 45ms")
	return b.String()
}

// Features showcases what the daemon does.
type Features struct {
	config typewriter.Model
	reload typewriter.Model
	diff   []diff.Line
	chart  chart.Bar
}

// NewFeatures builds the features page.
func NewFeatures(opts Options) Features {
	lines := diff.Lines(ConfigSnippet, ReloadedConfig)
	return Features{
		config: typewriter.New(ConfigSnippet, "toml", opts.typing()...),
		reload: typewriter.New(ReloadTranscript(lines), "bash", opts.typing()...),
		diff:   lines,
		chart:  chart.Performance(),
	}
}

func (f Features) Route() route.Route { return route.Features }

func (f Features) TitleKey() string { return "features.title" }

// Blocks returns the page's code blocks in page order.
func (f Features) Blocks() []typewriter.Model {
	return []typewriter.Model{f.config, f.reload}
}

func (f Features) Mount() (Page, tea.Cmd) {
	var c1, c2 tea.Cmd
	f.config, c1 = f.config.Mount()
	f.reload, c2 = f.reload.Mount()
	return f, tea.Batch(c1, c2)
}

func (f Features) Unmount() Page {
	f.config = f.config.Unmount()
	f.reload = f.reload.Unmount()
	return f
}

func (f Features) Reveal() Page {
	f.config = f.config.Reveal()
	f.reload = f.reload.Reveal()
	return f
}

func (f Features) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg.(type) {
	case typewriter.TickMsg, typewriter.BlinkMsg:
		var c1, c2 tea.Cmd
		f.config, c1 = f.config.Update(msg)
		f.reload, c2 = f.reload.Update(msg)
		return f, tea.Batch(c1, c2)
	}
	return f, nil
}

func (f Features) View(ctx Context) string {
	msgs := ctx.Messages
	theme := components.GetTheme()
	width := contentWidth(ctx.Width)
	half := halfWidth(width)

	blocks := []string{hero(msgs.T(f.TitleKey()), msgs.T("features.subtitle"), width)}
	for i, id := range FeatureIDs() {
		text := lipgloss.JoinVertical(lipgloss.Left,
			theme.Accent.Render(id.icon())+" "+theme.Title.Render(msgs.T(id.key("title"))),
			"",
			theme.Muted.Width(half).Render(msgs.T(id.key("description"))),
			"",
			bullets(msgs.List(id.key("benefits")), half),
		)
		blocks = append(blocks, split(text, f.showcase(ctx, id, half), width, i%2 == 1))
	}
	return frame(ctx.Width, blocks...)
}

func (f Features) showcase(ctx Context, id FeatureID, width int) string {
	msgs := ctx.Messages
	switch id {
	case FeatureMultiProcess:
		return f.config.SetWidth(width).View()
	case FeaturePerformance:
		c := f.chart.WithWidth(width - 4)
		return cardFrame(width).Render(sectionTitle(msgs.T("features.chart.title")) + "\n\n" + c.View())
	case FeatureHotReload:
		return lipgloss.JoinVertical(lipgloss.Left,
			f.reload.SetWidth(width).View(),
			"",
			cardFrame(width).Render(sectionTitle(msgs.T("features.diff.title"))+"\n\n"+diffView(f.diff)),
		)
	default:
		return cardFrame(width).Render(timeline(msgs.T("features.timeline.exited"), msgs.T("features.timeline.waiting"), msgs.T("features.timeline.restarted")))
	}
}

func cardFrame(width int) lipgloss.Style {
	p := components.GetTheme().Palette
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	return style.Width(max(width-style.GetHorizontalBorderSize(), 1))
}

// diffView colors a line diff, collapsing long unchanged runs.
func diffView(lines []diff.Line) string {
	p := components.GetTheme().Palette
	add := lipgloss.NewStyle().Foreground(p.Success)
	del := lipgloss.NewStyle().Foreground(p.Error)
	same := lipgloss.NewStyle().Foreground(p.Muted)

	out := make([]string, 0, len(lines))
	for i, l := range lines {
		text := l.Op.Prefix() + l.Text
		switch l.Op {
		case diff.Insert:
			out = append(out, add.Render(text))
		case diff.Delete:
			out = append(out, del.Render(text))
		default:
			if nearChange(lines, i, 2) {
				out = append(out, same.Render(text))
			} else if len(out) == 0 || out[len(out)-1] != same.Render("  ⋮") {
				out = append(out, same.Render("  ⋮"))
			}
		}
	}
	return strings.Join(out, "\n")
}

func nearChange(lines []diff.Line, i, context int) bool {
	for j := max(i-context, 0); j <= min(i+context, len(lines)-1); j++ {
		if lines[j].Op != diff.Equal {
			return true
		}
	}
	return false
}

// timeline renders the restart sequence: exit, backoff, recovery.
func timeline(exited, waiting, restarted string) string {
	p := components.GetTheme().Palette
	row := func(color lipgloss.Color, text string, strong bool) string {
		style := lipgloss.NewStyle().Foreground(p.Muted)
		if strong {
			style = lipgloss.NewStyle().Foreground(p.Text)
		}
		return lipgloss.NewStyle().Foreground(color).Render("●") + "  " + style.Render(text)
	}
	return strings.Join([]string{
		row(p.Error, exited, false),
		row(p.Warning, waiting, false),
		row(p.Success, restarted, true),
	}, "\n")
}
