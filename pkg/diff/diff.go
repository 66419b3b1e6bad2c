// Package diff computes line-level differences between two texts.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of change a Line represents.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Prefix is the unified-diff marker of the operation.
func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs before and after line by line. A missing final newline is not
// a change.
func Lines(before, after string) []Line {
	before, after = terminate(before), terminate(after)
	if before == after {
		out := make([]Line, 0)
		for _, text := range splitLines(before) {
			out = append(out, Line{Op: Equal, Text: text})
		}
		return out
	}

	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

// Stats counts inserted and deleted lines.
func Stats(lines []Line) (added, removed int) {
	for _, l := range lines {
		switch l.Op {
		case Insert:
			added++
		case Delete:
			removed++
		}
	}
	return added, removed
}

// AddedSections returns the TOML table headers ("[processes.cache]") that
// appear only in the newer text.
func AddedSections(lines []Line) []string {
	var out []string
	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		if l.Op == Insert && strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			out = append(out, text)
		}
	}
	return out
}

// Unified renders lines with ---/+++ headers and one hunk covering the
// whole text. It returns "" when nothing changed.
func Unified(lines []Line, beforeLabel, afterLabel string) string {
	added, removed := Stats(lines)
	if added == 0 && removed == 0 {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(lines)-added, len(lines)-removed)
	for _, l := range lines {
		buf.WriteString(l.Op.Prefix())
		buf.WriteString(l.Text)
		buf.WriteString("\n")
	}
	return buf.String()
}

func terminate(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
