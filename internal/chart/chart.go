// Package chart draws grouped horizontal bar charts for the terminal.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dataset is one series of the chart, one value per category label.
type Dataset struct {
	Label  string
	Values []float64
	Color  lipgloss.Color
}

// Bar is a grouped bar chart. Each category is scaled to its own maximum,
// since the categories use unrelated units.
type Bar struct {
	Labels   []string
	Datasets []Dataset
	Width    int
}

// Performance returns the fixed comparison shown on the features page.
func Performance() Bar {
	return Bar{
		Labels: []string{"Startup Time (ms)", "Memory Usage (MB)", "CPU Overhead (%)"},
		Datasets: []Dataset{
			{Label: "MI7 Daemon", Values: []float64{12, 4.5, 0.1}, Color: lipgloss.Color("#00D4FF")},
			{Label: "Standard Daemon", Values: []float64{150, 45, 2.5}, Color: lipgloss.Color("245")},
		},
		Width: 60,
	}
}

// Validate checks that every dataset has one non-negative value per label.
func (b Bar) Validate() error {
	if len(b.Labels) == 0 {
		return fmt.Errorf("chart has no categories")
	}
	for _, ds := range b.Datasets {
		if len(ds.Values) != len(b.Labels) {
			return fmt.Errorf("dataset %q has %d values for %d categories", ds.Label, len(ds.Values), len(b.Labels))
		}
		for _, v := range ds.Values {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("dataset %q has invalid value %v", ds.Label, v)
			}
		}
	}
	return nil
}

// WithWidth returns a copy of the chart rendered at width columns.
func (b Bar) WithWidth(width int) Bar {
	b.Width = width
	return b
}

// BarLength scales value against max onto width cells. Positive values always
// get at least one cell so they stay visible next to much larger ones.
func BarLength(value, max float64, width int) int {
	if width <= 0 || value <= 0 || max <= 0 {
		return 0
	}
	n := int(math.Round(value / max * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}

// FormatValue prints a value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// View renders the legend followed by one group of bars per category.
func (b Bar) View() string {
	if err := b.Validate(); err != nil {
		return mutedStyle.Render(err.Error())
	}

	nameWidth := 0
	valueWidth := 0
	for _, ds := range b.Datasets {
		nameWidth = max(nameWidth, ansi.StringWidth(ds.Label))
		for _, v := range ds.Values {
			valueWidth = max(valueWidth, len(FormatValue(v)))
		}
	}

	width := b.Width
	if width <= 0 {
		width = 60
	}
	// name, space, bar, space, value
	barWidth := max(width-nameWidth-valueWidth-2, 1)

	lines := []string{b.legend(width), ""}
	for i, label := range b.Labels {
		lines = append(lines, categoryStyle.Render(ansi.Truncate(label, width, "…")))

		peak := 0.0
		for _, ds := range b.Datasets {
			peak = max(peak, ds.Values[i])
		}
		for _, ds := range b.Datasets {
			v := ds.Values[i]
			n := BarLength(v, peak, barWidth)
			bar := lipgloss.NewStyle().Foreground(ds.Color).Render(strings.Repeat("█", n))
			pad := strings.Repeat(" ", barWidth-n)
			name := mutedStyle.Render(padRight(ds.Label, nameWidth))
			lines = append(lines, name+" "+bar+pad+" "+valueStyle.Render(FormatValue(v)))
		}
		if i < len(b.Labels)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (b Bar) legend(width int) string {
	items := make([]string, 0, len(b.Datasets))
	for _, ds := range b.Datasets {
		swatch := lipgloss.NewStyle().Foreground(ds.Color).Render("■")
		items = append(items, swatch+" "+mutedStyle.Render(ds.Label))
	}
	return ansi.Truncate(strings.Join(items, "   "), width, "…")
}

func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

var (
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
)
