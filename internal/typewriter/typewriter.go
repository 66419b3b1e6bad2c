// Package typewriter reveals a code snippet one character at a time behind
// a blinking cursor.
package typewriter

import (
	"iter"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gx1727/mi7site/internal/highlight"
)

const (
	DefaultInterval = 20 * time.Millisecond
	DefaultBlink    = 800 * time.Millisecond
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg advances the reveal of the block with the same ID and generation.
type TickMsg struct {
	ID  int
	Gen int
}

// BlinkMsg toggles the cursor of the block with the same ID and generation.
type BlinkMsg struct {
	ID  int
	Gen int
}

// Model is a single code block. The zero value is not usable; call New.
//
// Every (re)start bumps the generation. Ticks carry the generation they were
// scheduled for, so a tick that outlives its source or its page is dropped
// instead of advancing state it no longer belongs to.
type Model struct {
	id       int
	gen      int
	source   []rune
	pos      int
	mounted  bool
	cursorOn bool

	language string
	interval time.Duration
	blink    time.Duration
	width    int
}

// Option customises a Model.
type Option func(*Model)

// WithInterval sets the delay between revealed characters.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithBlink sets the cursor blink period.
func WithBlink(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.blink = d
		}
	}
}

// WithWidth sets the outer width of the rendered frame.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = w
	}
}

// New creates an unmounted block for source. Nothing is revealed until Mount.
func New(source, language string, opts ...Option) Model {
	m := Model{
		id:       nextID(),
		source:   []rune(source),
		language: language,
		interval: DefaultInterval,
		blink:    DefaultBlink,
		cursorOn: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID identifies the block in tick messages.
func (m Model) ID() int { return m.id }

// Language is the label shown in the frame and used for highlighting.
func (m Model) Language() string { return m.language }

// Source returns the full snippet.
func (m Model) Source() string { return string(m.source) }

// Pos is the number of revealed characters.
func (m Model) Pos() int { return m.pos }

// Len is the number of characters in the snippet.
func (m Model) Len() int { return len(m.source) }

// Done reports whether the whole snippet is revealed.
func (m Model) Done() bool { return m.pos >= len(m.source) }

// Mounted reports whether the block's timers are live.
func (m Model) Mounted() bool { return m.mounted }

// CursorVisible reports the current blink phase.
func (m Model) CursorVisible() bool { return m.cursorOn }

// Prefix returns the revealed part of the snippet.
func (m Model) Prefix() string { return string(m.source[:m.pos]) }

// SetWidth changes the outer width of the frame.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// Init mounts the block, satisfying the tea.Model shape.
func (m Model) Init() tea.Cmd {
	_, cmd := m.Mount()
	return cmd
}

// Mount starts a fresh reveal from the empty prefix.
func (m Model) Mount() (Model, tea.Cmd) {
	m.gen++
	m.pos = 0
	m.mounted = true
	m.cursorOn = true
	return m, tea.Batch(m.scheduleTick(), m.scheduleBlink())
}

// Unmount stops the block; pending ticks become stale.
func (m Model) Unmount() Model {
	m.gen++
	m.mounted = false
	return m
}

// SetSource replaces the snippet and restarts the reveal when mounted.
func (m Model) SetSource(source string) (Model, tea.Cmd) {
	m.source = []rune(source)
	if !m.mounted {
		m.gen++
		m.pos = 0
		return m, nil
	}
	return m.Mount()
}

// Reveal shows the whole snippet at once and stops the reveal timer. The
// cursor keeps blinking while mounted.
func (m Model) Reveal() Model {
	m.pos = len(m.source)
	return m
}

// Update advances the reveal and the cursor blink.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.owns(msg.ID, msg.Gen) || m.Done() {
			return m, nil
		}
		m.pos++
		if m.Done() {
			return m, nil
		}
		return m, m.scheduleTick()

	case BlinkMsg:
		if !m.owns(msg.ID, msg.Gen) {
			return m, nil
		}
		m.cursorOn = !m.cursorOn
		return m, m.scheduleBlink()
	}
	return m, nil
}

func (m Model) owns(id, gen int) bool {
	return m.mounted && id == m.id && gen == m.gen
}

func (m Model) scheduleTick() tea.Cmd {
	if m.Done() {
		return nil
	}
	id, gen := m.id, m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen}
	})
}

func (m Model) scheduleBlink() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(m.blink, func(time.Time) tea.Msg {
		return BlinkMsg{ID: id, Gen: gen}
	})
}

// View renders the frame: traffic-light dots, the language label, the
// highlighted prefix and the cursor.
func (m Model) View() string {
	dots := lipgloss.JoinHorizontal(lipgloss.Top,
		dotRed.Render("●"), " ", dotYellow.Render("●"), " ", dotGreen.Render("●"))
	header := headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, dots, "  ", labelStyle.Render(m.language)))

	cursor := " "
	if m.cursorOn {
		cursor = cursorStyle.Render("▋")
	}
	body := bodyStyle.Render(highlight.Code(m.Prefix(), m.language) + cursor)

	frame := frameStyle
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalFrameSize())
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// Prefixes yields every state of the reveal of source: the empty prefix,
// then one more character at a time up to the whole string.
func Prefixes(source string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield("") {
			return
		}
		var b strings.Builder
		for _, r := range source {
			b.WriteRune(r)
			if !yield(b.String()) {
				return
			}
		}
	}
}
