package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/objbrowse/explore"
	"github.com/jask/objbrowse/inspect"
	"github.com/jask/objbrowse/internal/config"
	"github.com/jask/objbrowse/internal/history"
	"github.com/jask/objbrowse/render"
)

// Run wires a browsing session over value and drives the terminal UI
// until the user quits. The store may be nil to browse without history.
func Run(value any, label string, cfg config.Config, store *history.Store) error {
	printer := render.NewPrinter(cfg.Render.PreviewDepth)
	highlighter := render.NewHighlighter(cfg.Render.Highlight, cfg.Render.HighlightStyle)
	session := explore.NewSession(value, label, explore.Options{
		Provider: inspect.NewReflectProvider(),
		Print:    printer.Print,
	})
	keys := NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), cfg.Keys))
	model := NewModel(session, keys, highlighter, store, cfg)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
