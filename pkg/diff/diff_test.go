package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const before = `[processes.api]
command = "./api-server"
instances = 4
`

const after = `[processes.api]
command = "./api-server"
instances = 4

[processes.cache]
command = "./cache"
instances = 2
`

func TestLinesIdentical(t *testing.T) {
	t.Parallel()

	lines := Lines(before, before)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, Equal, l.Op)
	}
	assert.Equal(t, "", Unified(lines, "a", "b"))
}

func TestLinesAddedSection(t *testing.T) {
	t.Parallel()

	lines := Lines(before, after)
	added, removed := Stats(lines)
	assert.Equal(t, 4, added)
	assert.Equal(t, 0, removed)
	assert.Equal(t, []string{"[processes.cache]"}, AddedSections(lines))
}

func TestLinesModifiedLine(t *testing.T) {
	t.Parallel()

	lines := Lines("a\nb\nc\n", "a\nB\nc\n")
	assert.Equal(t, []Line{
		{Op: Equal, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Insert, Text: "B"},
		{Op: Equal, Text: "c"},
	}, lines)
}

func TestUnified(t *testing.T) {
	t.Parallel()

	out := Unified(Lines("line1\nline2\nline3\n", "line1\nmodified\nline3\n"), "mi7.toml", "mi7.toml (new)")

	assert.True(t, strings.HasPrefix(out, "--- mi7.toml\n+++ mi7.toml (new)\n"))
	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.Contains(t, out, " line1\n")
	assert.Contains(t, out, "-line2\n")
	assert.Contains(t, out, "+modified\n")
}

func TestOpPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", Equal.Prefix())
	assert.Equal(t, "+", Insert.Prefix())
	assert.Equal(t, "-", Delete.Prefix())
}

func TestLinesIgnoresMissingFinalNewline(t *testing.T) {
	t.Parallel()

	lines := Lines("a\nb", "a\nb\n\n[extra]\nkey = 1")
	added, removed := Stats(lines)
	assert.Equal(t, 3, added)
	assert.Equal(t, 0, removed)
	assert.Equal(t, []string{"[extra]"}, AddedSections(lines))
}
