package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/objbrowse/explore"
	"github.com/jask/objbrowse/internal/config"
	"github.com/jask/objbrowse/internal/history"
	"github.com/jask/objbrowse/render"
)

// Scope names for key-binding filtering.
const (
	ScopeBrowse     = "browse"
	ScopeFilter     = "screen:filter"
	ScopeHistory    = "screen:history"
	ScopeHelp       = "screen:help"
	ScopeFullscreen = "screen:fullscreen"
)

// DetailMode selects what the detail pane shows for the current node.
type DetailMode int

const (
	ModePreview DetailMode = iota
	ModeOverview
	ModeDoc
	ModeSource
)

func (m DetailMode) Title() string {
	switch m {
	case ModeOverview:
		return "overview"
	case ModeDoc:
		return "docs"
	case ModeSource:
		return "source"
	default:
		return "preview"
	}
}

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Model struct {
	width     int
	height    int
	session   *explore.Session
	keys      *KeyRegistry
	screens   ScreenStack
	detail    DetailMode
	status    string
	statusErr bool
	quitting  bool

	cfg         config.Config
	highlighter *render.Highlighter
	store       *history.Store // nil when history is disabled
}

func NewModel(session *explore.Session, keys *KeyRegistry, highlighter *render.Highlighter, store *history.Store, cfg config.Config) Model {
	if cfg.UI.AttrPaneRatio <= 0 {
		cfg.UI.AttrPaneRatio = 1.0
	}
	return Model{
		session:     session,
		keys:        keys,
		highlighter: highlighter,
		store:       store,
		cfg:         cfg,
		detail:      ModePreview,
		status:      "Ready",
		width:       100,
		height:      32,
	}
}

func (m Model) Init() tea.Cmd {
	return m.recordVisit()
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// Session exposes the browsing session, mainly for tests.
func (m *Model) Session() *explore.Session { return m.session }

// ActiveScope is the scope of the topmost screen, or the browse view.
func (m *Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return ScopeBrowse
}

// recordVisit logs the current path to the history store, if one is
// attached. Failures surface in the status bar and never interrupt
// browsing.
func (m Model) recordVisit() tea.Cmd {
	if m.store == nil {
		return nil
	}
	node := m.session.Current()
	path, label := node.Path(), node.TypeLabel()
	store := m.store
	return func() tea.Msg {
		if err := store.RecordVisit(context.Background(), path, label); err != nil {
			return StatusMsg{Text: "history: " + err.Error(), IsErr: true}
		}
		return nil
	}
}
