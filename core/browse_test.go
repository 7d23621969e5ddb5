package core

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/objbrowse/explore"
	"github.com/jask/objbrowse/inspect"
	"github.com/jask/objbrowse/internal/config"
	"github.com/jask/objbrowse/render"
)

type innerThing struct {
	Leaf int
}

type browseThing struct {
	Inner innerThing
	Zeta  int
	count int
}

func testModel(t *testing.T, value any) Model {
	t.Helper()
	session := explore.NewSession(value, "root", explore.Options{
		Provider: inspect.NewReflectProvider(),
		Print:    render.NewPrinter(4).Print,
	})
	return NewModel(session, NewKeyRegistry(DefaultKeyBindings()), render.NewHighlighter(false, ""), nil, config.Config{})
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestMovementKeysDriveTheActiveList(t *testing.T) {
	m := testModel(t, browseThing{})
	node := m.Session().Current()
	m, _ = press(t, m, "j")
	if got := node.Cursor(explore.Public); got != 1 {
		t.Fatalf("cursor after j = %d, want 1", got)
	}
	m, _ = press(t, m, "k")
	if got := node.Cursor(explore.Public); got != 0 {
		t.Fatalf("cursor after k = %d, want 0", got)
	}
	m, _ = press(t, m, "G")
	if got, want := node.Cursor(explore.Public), node.Len(explore.Public)-1; got != want {
		t.Fatalf("cursor after G = %d, want %d", got, want)
	}
	_, _ = press(t, m, "g")
	if got := node.Cursor(explore.Public); got != 0 {
		t.Fatalf("cursor after g = %d, want 0", got)
	}
}

func TestEnterDrillsInAndEscReturns(t *testing.T) {
	m := testModel(t, browseThing{Inner: innerThing{Leaf: 5}})
	// Public list is sorted, so "Inner" is the initial selection.
	m, _ = press(t, m, "enter")
	if got := m.Session().Current().Path(); got != "root.Inner" {
		t.Fatalf("path after enter = %q", got)
	}
	m, _ = press(t, m, "esc")
	if got := m.Session().Current().Path(); got != "root" {
		t.Fatalf("path after esc = %q", got)
	}
	if m.Session().Depth() != 0 {
		t.Fatalf("depth = %d", m.Session().Depth())
	}
}

func TestTabTogglesCategory(t *testing.T) {
	m := testModel(t, browseThing{count: 2})
	node := m.Session().Current()
	if node.ActiveCategory() != explore.Public {
		t.Fatalf("initial category = %v", node.ActiveCategory())
	}
	m, _ = press(t, m, "tab")
	if node.ActiveCategory() != explore.Private {
		t.Fatalf("category after tab = %v", node.ActiveCategory())
	}
	if name, ok := node.SelectedName(); !ok || name != "_count" {
		t.Fatalf("private selection = %q, %v", name, ok)
	}
	_, _ = press(t, m, "tab")
	if node.ActiveCategory() != explore.Public {
		t.Fatalf("category after second tab = %v", node.ActiveCategory())
	}
}

func TestDetailModeKeysAndSourceSentinel(t *testing.T) {
	m := testModel(t, browseThing{})
	m, _ = press(t, m, "s")
	if m.detail != ModeSource {
		t.Fatalf("detail = %v, want source", m.detail)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, explore.SourceMissing) {
		t.Fatalf("source sentinel missing from view")
	}
	m, _ = press(t, m, "d")
	if m.detail != ModeDoc {
		t.Fatalf("detail = %v, want doc", m.detail)
	}
	m, _ = press(t, m, "p")
	if m.detail != ModePreview {
		t.Fatalf("detail = %v, want preview", m.detail)
	}
}

func TestViewShowsAttributesBreadcrumbAndCounter(t *testing.T) {
	m := testModel(t, browseThing{Zeta: 9})
	view := ansi.Strip(m.View())
	for _, want := range []string{"objbrowse", "root", "Inner", "Zeta", "(1/2)", "public", "private"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestFullscreenPushesAndPopsScreen(t *testing.T) {
	m := testModel(t, browseThing{})
	m, _ = press(t, m, "f")
	if m.ActiveScope() != ScopeFullscreen {
		t.Fatalf("scope = %q", m.ActiveScope())
	}
	m, _ = press(t, m, "esc")
	if m.ActiveScope() != ScopeBrowse {
		t.Fatalf("scope after esc = %q", m.ActiveScope())
	}
}

func TestFilterSelectMovesCursor(t *testing.T) {
	m := testModel(t, browseThing{})
	m, _ = press(t, m, "/")
	if m.ActiveScope() != ScopeFilter {
		t.Fatalf("scope = %q", m.ActiveScope())
	}
	// Type a query that uniquely matches Zeta, then accept it.
	m, _ = press(t, m, "z")
	m, cmd := press(t, m, "enter")
	if m.ActiveScope() != ScopeBrowse {
		t.Fatalf("filter did not close")
	}
	if cmd == nil {
		t.Fatalf("no selection command emitted")
	}
	next, _ := m.Update(cmd())
	m = next.(Model)
	if name, _ := m.Session().Current().SelectedName(); name != "Zeta" {
		t.Fatalf("selection after filter = %q, want Zeta", name)
	}
}

func TestBookmarkWithoutStoreDegrades(t *testing.T) {
	m := testModel(t, browseThing{})
	m, _ = press(t, m, "b")
	if m.statusErr {
		t.Fatalf("bookmark without store should not be an error")
	}
	if !strings.Contains(m.status, "history disabled") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestHistoryScreenRequiresStore(t *testing.T) {
	m := testModel(t, browseThing{})
	m, _ = press(t, m, "H")
	if m.ActiveScope() != ScopeBrowse {
		t.Fatalf("history screen opened without a store")
	}
	if !m.statusErr {
		t.Fatalf("expected an error status")
	}
}

func TestPaneResizePersistsConfig(t *testing.T) {
	t.Setenv("OBJBROWSE_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	m := testModel(t, browseThing{})
	m, cmd := press(t, m, ">")
	if got := m.cfg.UI.AttrPaneRatio; got != 1.25 {
		t.Fatalf("ratio after widen = %v, want 1.25", got)
	}
	if cmd == nil {
		t.Fatalf("resize did not schedule a save")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.IsErr {
		t.Fatalf("save failed: %+v", cmd())
	}
	// The new ratio round-trips through the config file, multi-word key
	// included.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.UI.AttrPaneRatio != 1.25 {
		t.Fatalf("persisted ratio = %v, want 1.25", cfg.UI.AttrPaneRatio)
	}

	m, _ = press(t, m, "<")
	if got := m.cfg.UI.AttrPaneRatio; got != 1.0 {
		t.Fatalf("ratio after narrow = %v, want 1.0", got)
	}
}

func TestPaneResizeClamped(t *testing.T) {
	t.Setenv("OBJBROWSE_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	m := testModel(t, browseThing{})
	for i := 0; i < 4; i++ {
		m, _ = press(t, m, "<")
	}
	if got := m.cfg.UI.AttrPaneRatio; got != 0.5 {
		t.Fatalf("ratio not clamped at 0.5: %v", got)
	}
	_, cmd := press(t, m, "<")
	if cmd != nil {
		t.Fatalf("resize at the clamp still scheduled a save")
	}
}

func TestHelpScreenOpensAndCloses(t *testing.T) {
	m := testModel(t, browseThing{})
	m, _ = press(t, m, "?")
	if m.ActiveScope() != ScopeHelp {
		t.Fatalf("scope = %q", m.ActiveScope())
	}
	m, _ = press(t, m, "esc")
	if m.ActiveScope() != ScopeBrowse {
		t.Fatalf("help did not close")
	}
}
