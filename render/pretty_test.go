package render

import (
	"strings"
	"testing"
)

type sample struct {
	Name  string
	Count int
	Inner *sample
}

func TestPrintShowsFieldsWithoutTrailingNewline(t *testing.T) {
	p := NewPrinter(0)
	got := p.Print(sample{Name: "top", Count: 3})
	if !strings.Contains(got, "Name") || !strings.Contains(got, "top") {
		t.Fatalf("missing field content: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing newline left in output")
	}
}

func TestPrintSurvivesCycles(t *testing.T) {
	a := &sample{Name: "a"}
	a.Inner = a
	p := NewPrinter(4)
	got := p.Print(a)
	if got == "" {
		t.Fatalf("empty output for cyclic value")
	}
}

func TestPrintDepthCap(t *testing.T) {
	deep := &sample{Name: "1", Inner: &sample{Name: "2", Inner: &sample{Name: "3"}}}
	shallow := NewPrinter(1).Print(deep)
	if strings.Contains(shallow, `"3"`) {
		t.Fatalf("depth cap ignored: %q", shallow)
	}
}

func TestDisabledHighlighterIsIdentity(t *testing.T) {
	h := NewHighlighter(false, "monokai")
	if h.Enabled() {
		t.Fatalf("disabled highlighter reports enabled")
	}
	src := "func main() {}"
	if got := h.Go(src); got != src {
		t.Fatalf("disabled highlighter altered text: %q", got)
	}
}
