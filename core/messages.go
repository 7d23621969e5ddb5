package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// SelectAttrMsg asks the browse view to move the cursor onto an
// attribute of the current node. Emitted by the filter screen.
type SelectAttrMsg struct {
	Name string
}

// JumpPathMsg asks the browse view to re-expand a dotted path from the
// root. Emitted by the history screen.
type JumpPathMsg struct {
	Path string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
