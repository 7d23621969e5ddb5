// Package render turns live values and source text into display
// strings: a depth-capped pretty-printer for previews and a terminal
// syntax highlighter for Go source.
package render

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Printer renders arbitrary values into multi-line display text. It is
// safe on cyclic structures and caps recursion depth so huge object
// graphs stay readable.
type Printer struct {
	cfg *spew.ConfigState
}

// NewPrinter returns a printer that descends at most maxDepth levels.
// A maxDepth of 0 means unlimited.
func NewPrinter(maxDepth int) *Printer {
	return &Printer{cfg: &spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                maxDepth,
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}}
}

// Print renders v without a trailing newline.
func (p *Printer) Print(v any) string {
	return strings.TrimRight(p.cfg.Sdump(v), "\n")
}
