package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/objbrowse/internal/history"
)

// ErrHistoryDisabled reports that no history store is attached.
var ErrHistoryDisabled = errors.New("history disabled")

type historyEntry struct {
	path     string
	label    string
	bookmark bool
}

// HistoryScreen lists bookmarks and recent visits. Selecting an entry
// re-expands its dotted path from the root.
type HistoryScreen struct {
	keys    *KeyRegistry
	store   *history.Store
	entries []historyEntry
	cursor  int
}

func NewHistoryScreen(store *history.Store, keys *KeyRegistry) (*HistoryScreen, error) {
	if store == nil {
		return nil, ErrHistoryDisabled
	}
	s := &HistoryScreen{keys: keys, store: store}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HistoryScreen) reload() error {
	ctx := context.Background()
	marks, err := s.store.Bookmarks(ctx)
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	visits, err := s.store.RecentVisits(ctx, 20)
	if err != nil {
		return fmt.Errorf("load visits: %w", err)
	}
	s.entries = s.entries[:0]
	for _, b := range marks {
		s.entries = append(s.entries, historyEntry{path: b.Path, label: b.Label, bookmark: true})
	}
	for _, v := range visits {
		s.entries = append(s.entries, historyEntry{path: v.Path, label: v.TypeLabel})
	}
	if s.cursor >= len(s.entries) {
		s.cursor = len(s.entries) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	return nil
}

func (s *HistoryScreen) Scope() string { return ScopeHistory }
func (s *HistoryScreen) Title() string { return "History" }

func (s *HistoryScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case s.keys.IsAction(keyMsg, "close", ScopeHistory):
		return nil, nil, true
	case s.keys.IsAction(keyMsg, "select", ScopeHistory):
		if len(s.entries) == 0 {
			return nil, nil, true
		}
		path := s.entries[s.cursor].path
		return nil, func() tea.Msg { return JumpPathMsg{Path: path} }, true
	}
	switch keyMsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "x":
		if s.cursor < len(s.entries) && s.entries[s.cursor].bookmark {
			path := s.entries[s.cursor].path
			if err := s.store.RemoveBookmark(context.Background(), path); err != nil {
				return s, ErrorCmd(err), false
			}
			if err := s.reload(); err != nil {
				return s, ErrorCmd(err), false
			}
		}
	}
	return s, nil, false
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return sentinelStyle.Render("nothing visited yet")
	}
	var b strings.Builder
	maxRows := height - 2
	start := 0
	if maxRows > 0 && s.cursor >= maxRows {
		start = s.cursor - maxRows + 1
	}
	for i := start; i < len(s.entries); i++ {
		if maxRows > 0 && i-start >= maxRows {
			break
		}
		e := s.entries[i]
		kind := "  "
		if e.bookmark {
			kind = "★ "
		}
		line := kind + e.path
		if e.label != "" {
			line += "  " + typeStyle.Render(e.label)
		}
		if i == s.cursor {
			line = attrSelectedStyle.Render(kind+e.path) + "  " + typeStyle.Render(e.label)
		}
		b.WriteString(line)
		if i < len(s.entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
