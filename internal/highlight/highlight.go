// Package highlight colours source snippets for terminal display.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const (
	formatter = "terminal256"
	style     = "monokai"
)

// Code returns src highlighted for language. Unknown languages and terminals
// without colour support get the source back unchanged.
func Code(src, language string) string {
	if src == "" || !Supported(language) || lipgloss.ColorProfile() == termenv.Ascii {
		return src
	}

	var buf strings.Builder
	if err := quick.Highlight(&buf, src, language, formatter, style); err != nil {
		return src
	}

	out := buf.String()
	// Lexers that ensure a trailing newline add one the caller never wrote.
	if !strings.HasSuffix(src, "\n") {
		if i := strings.LastIndex(out, "\n"); i >= 0 && ansi.Strip(out[i+1:]) == "" {
			out = out[:i] + out[i+1:]
		}
	}
	return out
}

// Supported reports whether chroma knows a lexer for language.
func Supported(language string) bool {
	return language != "" && lexers.Get(language) != nil
}
