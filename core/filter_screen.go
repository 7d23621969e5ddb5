package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/objbrowse/explore"
)

// FilterScreen fuzzy-matches attribute names of the current node.
// Selecting a match moves the browse cursor onto that attribute.
type FilterScreen struct {
	keys    *KeyRegistry
	names   []string
	input   textinput.Model
	matches []string
	cursor  int
}

func NewFilterScreen(node *explore.Node, keys *KeyRegistry) *FilterScreen {
	input := textinput.New()
	input.Placeholder = "attribute name"
	input.Prompt = "/ "
	input.Focus()
	names := append(slices.Clone(node.Names(explore.Public)), node.Names(explore.Private)...)
	return &FilterScreen{
		keys:    keys,
		names:   names,
		input:   input,
		matches: rankAttrs(names, ""),
	}
}

func (s *FilterScreen) Scope() string { return ScopeFilter }
func (s *FilterScreen) Title() string { return "Filter" }

func (s *FilterScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case s.keys.IsAction(keyMsg, "close", ScopeFilter):
		return nil, nil, true
	case s.keys.IsAction(keyMsg, "select", ScopeFilter):
		if len(s.matches) == 0 {
			return nil, nil, true
		}
		name := s.matches[s.cursor]
		return nil, func() tea.Msg { return SelectAttrMsg{Name: name} }, true
	}
	switch keyMsg.String() {
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil, false
	case "down", "ctrl+n":
		if s.cursor < len(s.matches)-1 {
			s.cursor++
		}
		return s, nil, false
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.matches = rankAttrs(s.names, s.input.Value())
	s.cursor = 0
	return s, cmd, false
}

func (s *FilterScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	visible := s.matches
	start := 0
	maxRows := height - 4
	if maxRows > 0 && len(visible) > maxRows {
		// Keep the selected match inside the window.
		if s.cursor >= maxRows {
			start = s.cursor - maxRows + 1
		}
		end := start + maxRows
		if end > len(visible) {
			end = len(visible)
		}
		visible = visible[start:end]
	}
	if len(visible) == 0 {
		b.WriteString(sentinelStyle.Render("no matches"))
	}
	for i, name := range visible {
		marker := "  "
		style := attrStyle
		if start+i == s.cursor {
			marker = "> "
			style = attrSelectedStyle
		}
		b.WriteString(marker + style.Render(name))
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString(fmt.Sprintf("\n\n%d/%d", len(s.matches), len(s.names)))
	return b.String()
}

// rankAttrs orders names by how well they match query: prefix matches,
// then substring matches by position, then everything else by edit
// distance. An empty query keeps the original order.
func rankAttrs(names []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(names)
	}
	type scored struct {
		name string
		tier int
		dist int
	}
	ranked := make([]scored, 0, len(names))
	for _, name := range names {
		ln := strings.ToLower(name)
		switch {
		case strings.HasPrefix(ln, q):
			ranked = append(ranked, scored{name: name, tier: 0})
		case strings.Contains(ln, q):
			ranked = append(ranked, scored{name: name, tier: 1, dist: strings.Index(ln, q)})
		default:
			ranked = append(ranked, scored{name: name, tier: 2, dist: levenshtein.ComputeDistance(q, ln)})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].tier != ranked[j].tier {
			return ranked[i].tier < ranked[j].tier
		}
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].name < ranked[j].name
	})
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}
	return out
}
