package core

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// FullscreenScreen shows one detail projection untruncated inside a
// scrollable viewport.
type FullscreenScreen struct {
	keys    *KeyRegistry
	title   string
	content string
	vp      viewport.Model
	sized   bool
}

func NewFullscreenScreen(title, content string, keys *KeyRegistry) *FullscreenScreen {
	return &FullscreenScreen{keys: keys, title: title, content: content}
}

func (s *FullscreenScreen) Scope() string { return ScopeFullscreen }
func (s *FullscreenScreen) Title() string { return s.title }

func (s *FullscreenScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(keyMsg, "close", ScopeFullscreen),
			keyMsg.String() == "f",
			keyMsg.String() == "q":
			return nil, nil, true
		}
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd, false
}

func (s *FullscreenScreen) View(width, height int) string {
	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if !s.sized || s.vp.Width != width || s.vp.Height != bodyHeight {
		s.vp = viewport.New(width, bodyHeight)
		s.vp.SetContent(s.content)
		s.sized = true
	}
	return headerAppStyle.Render(s.title) + "\n\n" + s.vp.View()
}
