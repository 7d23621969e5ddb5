package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup composites a bordered card over the base view, centered.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	cardLines := splitToLines(card, 0)
	cardWidth := maxLineWidth(cardLines)
	cardHeight := len(cardLines)
	if cardWidth <= 0 || cardHeight <= 0 {
		return baseCanvas
	}
	x := (width - cardWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (height - cardHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseCanvas, cardLines, x, y, width, height)
}

func overlayAt(base string, overlayLines []string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		overlayLine := padRightANSI(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// splitToLines splits and, when height > 0, clips and pads to height.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > widest {
			widest = w
		}
	}
	return widest
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
