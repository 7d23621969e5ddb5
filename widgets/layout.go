package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HStack lays widgets out side by side, splitting the width by Ratios
// (equal split when Ratios is absent or mismatched).
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := maxIntW(0, h.Gap*(len(h.Widgets)-1))
	widths := splitSpan(maxIntW(1, width-gapTotal), len(h.Widgets), h.Ratios)
	cols := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cols[i] = strings.Split(w.Render(maxIntW(1, widths[i]), height), "\n")
		if len(cols[i]) > rows {
			rows = len(cols[i])
		}
	}
	out := make([]string, 0, rows)
	gap := strings.Repeat(" ", h.Gap)
	for r := 0; r < rows; r++ {
		parts := make([]string, len(cols))
		for i := range cols {
			line := ""
			if r < len(cols[i]) {
				line = cols[i][r]
			}
			parts[i] = padRight(line, widths[i])
		}
		out = append(out, strings.Join(parts, gap))
	}
	return strings.Join(out, "\n")
}

// VStack stacks widgets top to bottom, splitting the height by Ratios.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := maxIntW(0, v.Spacing*(len(v.Widgets)-1))
	heights := splitSpan(maxIntW(1, height-spacingTotal), len(v.Widgets), v.Ratios)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		lines = append(lines, w.Render(width, maxIntW(1, heights[i])))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// splitSpan divides total cells among n widgets, spreading remainders
// from the left so sums always come out exact.
func splitSpan(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		each := total / n
		for i := range out {
			out[i] = each
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	used := 0
	for i := range out {
		r := ratios[i]
		if r <= 0 {
			r = 1
		}
		out[i] = int(math.Floor(r / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
