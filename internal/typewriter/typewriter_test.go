package typewriter

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(m Model) TickMsg {
	return TickMsg{ID: m.id, Gen: m.gen}
}

func TestRevealProducesNPlusOneStates(t *testing.T) {
	t.Parallel()

	for _, source := range []string{"", "a", "$ mi7 reload", "守护进程"} {
		m := New(source, "bash")
		m, _ = m.Mount()

		states := []string{m.Prefix()}
		for i := 0; i < 100 && !m.Done(); i++ {
			var cmd tea.Cmd
			m, cmd = m.Update(tick(m))
			states = append(states, m.Prefix())
			if m.Done() {
				assert.Nil(t, cmd, "no tick may be scheduled after the last character")
			} else {
				assert.NotNil(t, cmd)
			}
		}

		n := len([]rune(source))
		require.Len(t, states, n+1, "source %q", source)
		assert.Equal(t, "", states[0])
		assert.Equal(t, source, states[n])

		// Further ticks change nothing.
		after, cmd := m.Update(tick(m))
		assert.Nil(t, cmd)
		assert.Equal(t, source, after.Prefix())
	}
}

func TestPrefixesMatchesTickSequence(t *testing.T) {
	t.Parallel()

	source := "[processes.api]\ninstances = 4"
	got := slices.Collect(Prefixes(source))
	require.Len(t, got, len(source)+1)

	m, _ := New(source, "toml").Mount()
	for i, want := range got {
		assert.Equal(t, want, m.Prefix(), "state %d", i)
		m, _ = m.Update(tick(m))
	}
}

func TestPrefixesStopsEarly(t *testing.T) {
	t.Parallel()

	var seen []string
	for p := range Prefixes("abcdef") {
		seen = append(seen, p)
		if len(p) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"", "a", "ab"}, seen)
}

func TestStaleTicksAreIgnored(t *testing.T) {
	t.Parallel()

	m, _ := New("old source", "bash").Mount()
	m, _ = m.Update(tick(m))
	stale := tick(m)

	m, cmd := m.SetSource("new")
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Pos())

	m, cmd = m.Update(stale)
	assert.Nil(t, cmd, "a stale tick must not reschedule itself")
	assert.Equal(t, 0, m.Pos())

	m, _ = m.Update(tick(m))
	assert.Equal(t, "n", m.Prefix())
}

func TestTicksForOtherBlocksAreIgnored(t *testing.T) {
	t.Parallel()

	a, _ := New("aaa", "bash").Mount()
	b, _ := New("bbb", "bash").Mount()
	require.NotEqual(t, a.ID(), b.ID())

	a, cmd := a.Update(tick(b))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, a.Pos())
}

func TestUnmountStopsTimers(t *testing.T) {
	t.Parallel()

	m, _ := New("hello", "bash").Mount()
	pending := tick(m)
	blink := BlinkMsg{ID: m.id, Gen: m.gen}

	m = m.Unmount()
	assert.False(t, m.Mounted())

	m, cmd := m.Update(pending)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Pos())

	m, cmd = m.Update(blink)
	assert.Nil(t, cmd)

	// Mounting again starts over from the empty prefix.
	m, cmd = m.Mount()
	assert.NotNil(t, cmd)
	assert.Equal(t, "", m.Prefix())
}

func TestCursorBlinks(t *testing.T) {
	t.Parallel()

	m, _ := New("x", "bash", WithBlink(time.Second)).Mount()
	require.True(t, m.CursorVisible())

	m, cmd := m.Update(BlinkMsg{ID: m.id, Gen: m.gen})
	assert.False(t, m.CursorVisible())
	assert.NotNil(t, cmd, "blinking continues after the reveal")

	m = m.Reveal()
	m, cmd = m.Update(BlinkMsg{ID: m.id, Gen: m.gen})
	assert.True(t, m.CursorVisible())
	assert.NotNil(t, cmd)
}

func TestViewShowsLanguageAndPrefix(t *testing.T) {
	t.Parallel()

	m := New("$ mi7 status", "bash", WithWidth(40)).Reveal()
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "bash")
	assert.Contains(t, view, "$ mi7 status")
	for _, line := range splitLines(view) {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	m := New("x", "toml", WithInterval(5*time.Millisecond), WithBlink(0))
	assert.Equal(t, 5*time.Millisecond, m.interval)
	assert.Equal(t, DefaultBlink, m.blink, "non-positive durations keep the default")
	assert.Equal(t, "toml", m.Language())
	assert.Equal(t, "x", m.Source())
	assert.Equal(t, 1, m.Len())
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
