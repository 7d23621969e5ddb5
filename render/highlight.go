package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Highlighter colors Go source text for the terminal. The chroma
// formatter is chosen from the terminal's detected color profile; on a
// dumb terminal (or when disabled by config) text passes through
// unchanged.
type Highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// NewHighlighter builds a highlighter for the given chroma style name.
// With enabled false, or on a colorless terminal, Go is the identity.
func NewHighlighter(enabled bool, styleName string) *Highlighter {
	h := &Highlighter{}
	if !enabled {
		return h
	}
	var formatterName string
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		formatterName = "terminal16m"
	case termenv.ANSI256:
		formatterName = "terminal256"
	case termenv.ANSI:
		formatterName = "terminal"
	default:
		return h
	}
	h.lexer = chroma.Coalesce(lexers.Get("go"))
	h.formatter = formatters.Get(formatterName)
	h.style = styles.Get(styleName)
	if h.style == nil {
		h.style = styles.Fallback
	}
	return h
}

// Enabled reports whether Go will emit color.
func (h *Highlighter) Enabled() bool {
	return h.lexer != nil && h.formatter != nil
}

// Go highlights Go source. Any tokenizing or formatting trouble falls
// back to the input text.
func (h *Highlighter) Go(src string) string {
	if !h.Enabled() || src == "" {
		return src
	}
	it, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}
	var out strings.Builder
	if err := h.formatter.Format(&out, h.style, it); err != nil {
		return src
	}
	return strings.TrimRight(out.String(), "\n")
}
