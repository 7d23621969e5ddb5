package core

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/objbrowse/explore"
	"github.com/jask/objbrowse/inspect"
)

func TestRankAttrs(t *testing.T) {
	names := []string{"Addr", "Client", "OnPanic", "Routes", "_mu", "_requests"}
	cases := []struct {
		query string
		want  []string
	}{
		// Empty query keeps declaration order.
		{"", []string{"Addr", "Client", "OnPanic", "Routes", "_mu", "_requests"}},
		// Prefix beats substring, substring position breaks ties.
		{"r", []string{"Routes", "_requests", "Addr", "_mu", "Client", "OnPanic"}},
		// Exact name wins; the rest fall through to edit distance.
		{"client", []string{"Client", "Addr", "OnPanic", "Routes", "_mu", "_requests"}},
	}
	for _, tc := range cases {
		got := rankAttrs(names, tc.query)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("rankAttrs(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestRankAttrsDoesNotAliasInput(t *testing.T) {
	names := []string{"b", "a"}
	got := rankAttrs(names, "")
	got[0] = "mutated"
	if names[0] != "b" {
		t.Fatalf("input slice was mutated")
	}
}

func TestFilterScreenSelectEmitsAttribute(t *testing.T) {
	type filterable struct {
		Alpha int
		Beta  int
	}
	node := explore.NewNode(filterable{}, "root", explore.Options{Provider: inspect.NewReflectProvider()})
	screen := NewFilterScreen(node, NewKeyRegistry(DefaultKeyBindings()))

	_, _, pop := screen.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bet")})
	if pop {
		t.Fatalf("typing closed the screen")
	}
	_, cmd, pop := screen.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("select did not close the screen")
	}
	if cmd == nil {
		t.Fatalf("select produced no command")
	}
	msg, ok := cmd().(SelectAttrMsg)
	if !ok {
		t.Fatalf("command produced %T", cmd())
	}
	if msg.Name != "Beta" {
		t.Fatalf("selected %q, want Beta", msg.Name)
	}
}

func TestFilterScreenScrollsSelectionIntoView(t *testing.T) {
	type wide struct {
		Alpha, Bravo, Charlie, Delta, Echo, Foxtrot, Golf, Hotel int
	}
	node := explore.NewNode(wide{}, "root", explore.Options{Provider: inspect.NewReflectProvider()})
	screen := NewFilterScreen(node, NewKeyRegistry(DefaultKeyBindings()))
	for i := 0; i < 5; i++ {
		screen.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	// Height leaves room for four match rows; the cursor sits on the
	// sixth match, so the window must have scrolled down to it.
	view := ansi.Strip(screen.View(40, 8))
	if !strings.Contains(view, "> Foxtrot") {
		t.Fatalf("selected match not visible:\n%s", view)
	}
	if strings.Contains(view, "Alpha") {
		t.Fatalf("window did not scroll past the first match:\n%s", view)
	}
}

func TestFilterScreenCloseWithoutSelection(t *testing.T) {
	type filterable struct{ Alpha int }
	node := explore.NewNode(filterable{}, "root", explore.Options{Provider: inspect.NewReflectProvider()})
	screen := NewFilterScreen(node, NewKeyRegistry(DefaultKeyBindings()))
	_, cmd, pop := screen.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatalf("close did not pop the screen")
	}
	if cmd != nil {
		t.Fatalf("close should not emit a command")
	}
}
