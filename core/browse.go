package core

import (
	"strings"

	"github.com/jask/objbrowse/explore"
	"github.com/jask/objbrowse/widgets"
)

// Pane geometry. The frame spends one row each on header, status bar
// and footer; panes own a border row top and bottom.
func (m Model) bodyHeight() int {
	h := m.height - 3
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) attrInnerHeight() int {
	return m.bodyHeight() - 2
}

// movementHeight is the window size handed to cursor movement. It is
// one short of the visible rows so the late-scroll rule (the window
// moves only once the cursor passes offset+height) keeps the selection
// on screen.
func (m Model) movementHeight() int {
	h := m.attrInnerHeight() - 1
	if h < 0 {
		h = 0
	}
	return h
}

// buildBrowse renders the two-pane body: attribute list on the left,
// detail projection on the right.
func (m Model) buildBrowse(width, height int) string {
	node := m.session.Current()
	attrs := widgets.Pane{
		Title:    categoryHeader(node.ActiveCategory()),
		Subtitle: node.Counter(),
		Content:  m.attrRows(node, height-2),
		Selected: true,
	}
	detail := widgets.Pane{
		Title:    m.detail.Title(),
		Subtitle: typeStyle.Render(node.TypeLabel()),
		Content:  m.detailBody(node, height-2, false),
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{attrs, detail},
		Ratios:  []float64{m.cfg.UI.AttrPaneRatio, 2},
		Gap:     1,
	}.Render(width, height)
}

func categoryHeader(active explore.Category) string {
	pub, priv := categoryOffStyle, categoryOnStyle
	if active == explore.Public {
		pub, priv = categoryOnStyle, categoryOffStyle
	}
	return pub.Render("public") + " " + priv.Render("private")
}

func (m Model) attrRows(node *explore.Node, height int) string {
	rows := node.VisibleRows(height)
	if len(rows) == 0 {
		return sentinelStyle.Render("no attributes")
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		style := attrStyle
		if strings.HasPrefix(row.Name, "_") {
			style = attrPrivateStyle
		}
		if row.Selected {
			style = attrSelectedStyle
		}
		lines = append(lines, style.Render(row.Name))
	}
	return strings.Join(lines, "\n")
}

// detailBody renders the active detail projection of node. With
// fullscreen set the text is untruncated; height is ignored.
func (m Model) detailBody(node *explore.Node, height int, fullscreen bool) string {
	switch m.detail {
	case ModeDoc:
		doc := node.Doc(height, fullscreen)
		if doc == explore.DocMissing {
			return sentinelStyle.Render(doc)
		}
		return doc
	case ModeSource:
		if !node.HasSource() {
			return sentinelStyle.Render(explore.SourceMissing)
		}
		return m.highlighter.Go(node.Source(height, fullscreen))
	case ModeOverview:
		lines := []string{
			typeStyle.Render(node.TypeLabel()),
			"",
		}
		doc := node.Doc(maxRows(height-2, fullscreen), fullscreen)
		if doc == explore.DocMissing {
			doc = sentinelStyle.Render(doc)
		}
		return strings.Join(append(lines, doc), "\n")
	default:
		return node.Preview(height, fullscreen)
	}
}

func maxRows(h int, fullscreen bool) int {
	if fullscreen {
		return 0
	}
	if h < 0 {
		return 0
	}
	return h
}
