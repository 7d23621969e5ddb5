package core

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/objbrowse/internal/config"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.session.Current().EnsureVisible(m.movementHeight())
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case SelectAttrMsg:
		node := m.session.Current()
		if node.Select(msg.Name) {
			node.EnsureVisible(m.movementHeight())
			m.SetStatus("selected " + msg.Name)
		}
		return m, nil
	case JumpPathMsg:
		node, err := m.session.JumpTo(msg.Path)
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		node.EnsureVisible(m.movementHeight())
		m.SetStatus("jumped to " + node.Path())
		return m, m.recordVisit()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			if next != nil {
				m.screens.items[len(m.screens.items)-1] = next
			}
			return m, cmd
		}
		return m.handleBrowseKey(msg)
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	node := m.session.Current()
	switch {
	case m.keys.IsAction(msg, "quit", ScopeBrowse):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, "move-down", ScopeBrowse):
		node.MoveDown(m.movementHeight())
	case m.keys.IsAction(msg, "move-up", ScopeBrowse):
		node.MoveUp()
	case m.keys.IsAction(msg, "move-top", ScopeBrowse):
		node.MoveTop()
	case m.keys.IsAction(msg, "move-bottom", ScopeBrowse):
		node.MoveBottom(m.movementHeight())
	case m.keys.IsAction(msg, "toggle-category", ScopeBrowse):
		node.ToggleCategory()
	case m.keys.IsAction(msg, "enter", ScopeBrowse):
		child, ok, err := m.session.Enter()
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		if ok {
			m.SetStatus(child.Path())
			return m, m.recordVisit()
		}
	case m.keys.IsAction(msg, "parent", ScopeBrowse):
		if m.session.Leave() {
			m.SetStatus(m.session.Current().Path())
		}
	case m.keys.IsAction(msg, "mode-preview", ScopeBrowse):
		m.detail = ModePreview
	case m.keys.IsAction(msg, "mode-overview", ScopeBrowse):
		m.detail = ModeOverview
	case m.keys.IsAction(msg, "mode-doc", ScopeBrowse):
		m.detail = ModeDoc
	case m.keys.IsAction(msg, "mode-source", ScopeBrowse):
		m.detail = ModeSource
	case m.keys.IsAction(msg, "fullscreen", ScopeBrowse):
		m.screens.Push(NewFullscreenScreen(
			m.detail.Title()+" · "+node.Path(),
			m.detailBody(node, 0, true),
			m.keys,
		))
	case m.keys.IsAction(msg, "open-filter", ScopeBrowse):
		m.screens.Push(NewFilterScreen(node, m.keys))
	case m.keys.IsAction(msg, "pane-wider", ScopeBrowse):
		return m.resizeAttrPane(0.25)
	case m.keys.IsAction(msg, "pane-narrower", ScopeBrowse):
		return m.resizeAttrPane(-0.25)
	case m.keys.IsAction(msg, "bookmark", ScopeBrowse):
		if m.store == nil {
			m.SetStatus("history disabled; bookmark not saved")
			return m, nil
		}
		if err := m.store.AddBookmark(context.Background(), node.Path(), node.TypeLabel()); err != nil {
			m.SetError(err)
			return m, nil
		}
		return m, StatusCmd("bookmarked " + node.Path())
	case m.keys.IsAction(msg, "open-history", ScopeBrowse):
		screen, err := NewHistoryScreen(m.store, m.keys)
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		m.screens.Push(screen)
	case m.keys.IsAction(msg, "open-help", ScopeBrowse):
		m.screens.Push(NewHelpScreen(m.keys))
	}
	return m, nil
}

// resizeAttrPane adjusts the attribute pane's width share and persists
// the new ratio so it survives restarts.
func (m Model) resizeAttrPane(delta float64) (tea.Model, tea.Cmd) {
	ratio := m.cfg.UI.AttrPaneRatio + delta
	if ratio < 0.5 {
		ratio = 0.5
	}
	if ratio > 3 {
		ratio = 3
	}
	if ratio == m.cfg.UI.AttrPaneRatio {
		return m, nil
	}
	m.cfg.UI.AttrPaneRatio = ratio
	cfg := m.cfg
	return m, func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return StatusMsg{Text: "save config: " + err.Error(), IsErr: true}
		}
		return StatusMsg{Text: fmt.Sprintf("attribute pane ratio %.2f", cfg.UI.AttrPaneRatio)}
	}
}
