package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a bordered cell with a title woven into the top border and
// an optional subtitle woven into the bottom border, right-aligned.
// Title and subtitle may carry their own ANSI styling.
type Pane struct {
	Title    string
	Subtitle string
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := lipgloss.Color("#6c7086")
	if p.Selected {
		border = lipgloss.Color("#89b4fa")
	}
	if p.Focused {
		border = lipgloss.Color("#a6e3a1")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	top := borderEdge(borderStyle, "╭", "╮", innerWidth, p.Title, false)
	bottom := borderEdge(borderStyle, "╰", "╯", innerWidth, p.Subtitle, true)

	v := borderStyle.Render("│")
	contentLines := strings.Split(p.Content, "\n")
	if p.Content == "" {
		contentLines = nil
	}
	innerHeight := height - 2
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// borderEdge builds one horizontal border line with label text set into
// it, left-aligned for titles and right-aligned for subtitles.
func borderEdge(style lipgloss.Style, left, right string, innerWidth int, label string, alignRight bool) string {
	if strings.TrimSpace(ansi.Strip(label)) == "" {
		return style.Render(left) + style.Render(strings.Repeat("─", innerWidth)) + style.Render(right)
	}
	text := " " + label + " "
	if ansi.StringWidth(text) > innerWidth {
		text = " " + ansi.Truncate(label, maxIntW(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(text)
	if dashes < 0 {
		dashes = 0
	}
	near := 1
	if near > dashes {
		near = dashes
	}
	far := dashes - near
	if alignRight {
		return style.Render(left) +
			style.Render(strings.Repeat("─", far)) +
			text +
			style.Render(strings.Repeat("─", near)) +
			style.Render(right)
	}
	return style.Render(left) +
		style.Render(strings.Repeat("─", near)) +
		text +
		style.Render(strings.Repeat("─", far)) +
		style.Render(right)
}

func maxIntW(a, b int) int {
	if a > b {
		return a
	}
	return b
}
