package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func plain(src string, width int) string {
	return ansi.Strip(Render(src, width))
}

func TestRenderInlineMarkup(t *testing.T) {
	t.Parallel()

	got := plain("**mi7soft-daemon** runs *Swoole* and `mi7.toml`.", 80)
	assert.Equal(t, "mi7soft-daemon runs Swoole and mi7.toml.", got)
}

func TestRenderSoftBreaksBecomeSpaces(t *testing.T) {
	t.Parallel()

	got := plain("built by developers,\nfor developers.", 80)
	assert.Equal(t, "built by developers, for developers.", got)
}

func TestRenderParagraphsAreSeparated(t *testing.T) {
	t.Parallel()

	got := plain("first\n\nsecond", 80)
	assert.Equal(t, "first\n\nsecond", got)
}

func TestRenderLists(t *testing.T) {
	t.Parallel()

	got := plain("- **Tiny**: one binary.\n- Declarative\n", 80)
	assert.Equal(t, "• Tiny: one binary.\n• Declarative", got)

	ordered := plain("1. start\n2. reload\n", 80)
	assert.Equal(t, "1. start\n2. reload", ordered)
}

func TestRenderHeadingAndLink(t *testing.T) {
	t.Parallel()

	got := plain("# Open Source\n\nSee [GitHub](https://github.com/gx1727/mi7soft-daemon).", 80)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "Open Source", lines[0])
	assert.Contains(t, got, "GitHub (https://github.com/gx1727/mi7soft-daemon)")
}

func TestRenderWraps(t *testing.T) {
	t.Parallel()

	src := strings.Repeat("daemon ", 20)
	for _, line := range strings.Split(plain(src, 30), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30)
	}

	cjk := strings.Repeat("守护进程", 10)
	for _, line := range strings.Split(plain(cjk, 20), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Render("  \n", 40))
}
