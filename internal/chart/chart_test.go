package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceDatasets(t *testing.T) {
	t.Parallel()

	c := Performance()
	require.NoError(t, c.Validate())
	assert.Equal(t, []string{"Startup Time (ms)", "Memory Usage (MB)", "CPU Overhead (%)"}, c.Labels)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, []float64{12, 4.5, 0.1}, c.Datasets[0].Values)
	assert.Equal(t, []float64{150, 45, 2.5}, c.Datasets[1].Values)
}

func TestBarLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		max   float64
		width int
		want  int
	}{
		{"peak fills the width", 150, 150, 40, 40},
		{"proportional", 75, 150, 40, 20},
		{"tiny values stay visible", 0.1, 2.5, 40, 2},
		{"rounding up to one cell", 12, 1500, 40, 1},
		{"zero value", 0, 10, 40, 0},
		{"zero width", 5, 10, 0, 0},
		{"zero max", 5, 0, 10, 0},
		{"clamped", 20, 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BarLength(tt.value, tt.max, tt.width))
		})
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12", FormatValue(12))
	assert.Equal(t, "4.5", FormatValue(4.5))
	assert.Equal(t, "0.1", FormatValue(0.1))
}

func TestValidateRejectsMismatchedData(t *testing.T) {
	t.Parallel()

	c := Bar{Labels: []string{"a", "b"}, Datasets: []Dataset{{Label: "x", Values: []float64{1}}}}
	require.Error(t, c.Validate())

	c.Datasets[0].Values = []float64{1, -2}
	require.Error(t, c.Validate())

	require.Error(t, Bar{}.Validate())
	assert.Contains(t, ansi.Strip(Bar{}.View()), "no categories")
}

func TestViewLayout(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(Performance().WithWidth(50).View())
	lines := strings.Split(view, "\n")

	assert.Contains(t, lines[0], "MI7 Daemon")
	assert.Contains(t, lines[0], "Standard Daemon")
	for _, label := range Performance().Labels {
		assert.Contains(t, view, label)
	}
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 50, "line %q", line)
	}

	// The larger value of each category spans the whole bar area.
	var standard []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Standard Daemon") {
			standard = append(standard, line)
		}
	}
	require.Len(t, standard, 3)
	assert.Equal(t, strings.Count(standard[0], "█"), strings.Count(standard[2], "█"))
}
