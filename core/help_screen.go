package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpScreen lists the browse-scope key bindings.
type HelpScreen struct {
	keys *KeyRegistry
}

func NewHelpScreen(keys *KeyRegistry) *HelpScreen {
	return &HelpScreen{keys: keys}
}

func (s *HelpScreen) Scope() string { return ScopeHelp }
func (s *HelpScreen) Title() string { return "Help" }

func (s *HelpScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if s.keys.IsAction(keyMsg, "close", ScopeHelp) || keyMsg.String() == "?" || keyMsg.String() == "q" {
			return nil, nil, true
		}
	}
	return s, nil, false
}

func (s *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	var b strings.Builder
	b.WriteString(headerAppStyle.Render("Key bindings"))
	b.WriteString("\n\n")
	bindings := s.keys.BindingsForScope(ScopeBrowse)
	for i, binding := range bindings {
		if len(binding.Keys) == 0 {
			continue
		}
		b.WriteString(keyStyle.Render(padKeys(binding.Keys)) + "  " + binding.Description)
		if i < len(bindings)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func padKeys(keys []string) string {
	joined := strings.Join(keys, "/")
	for len(joined) < 18 {
		joined += " "
	}
	return joined
}
