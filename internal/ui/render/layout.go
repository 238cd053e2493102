package render

import "github.com/kk-code-lab/fbrowse/internal/ui/geom"

type layoutMetrics struct {
	title     geom.Rect
	subtitle  geom.Rect
	path      geom.Rect
	list      geom.Rect // clip rectangle of the rows
	touch     geom.Rect // where a touch selects a row
	scrollbar geom.Rect
	preview   geom.Rect
	status    geom.Rect
	buttons   geom.Rect
	numRows   int
	rowHeight int
}

const (
	minPreviewTerminalWidth = 60
	previewWidthPercent     = 45
	footerRows              = 2 // status line and button box
)

// computeLayout splits a w×h screen. The list takes whatever is left after
// the header rows and the footer; rows are lineHeight tall.
func computeLayout(w, h, lineHeight int, hasSubtitle, hasPath, hasPreview bool) layoutMetrics {
	if lineHeight < 1 {
		lineHeight = 1
	}
	var m layoutMetrics

	y := 0
	m.title = geom.Rect{X: 0, Y: y, W: w, H: 1}
	y++
	if hasSubtitle {
		m.subtitle = geom.Rect{X: 0, Y: y, W: w, H: 1}
		y++
	}
	if hasPath {
		m.path = geom.Rect{X: 0, Y: y, W: w, H: 1}
		y++
	}

	bottom := h - footerRows
	if bottom < y+1 {
		bottom = y + 1
	}
	m.status = geom.Rect{X: 0, Y: bottom, W: w, H: 1}
	m.buttons = geom.Rect{X: 0, Y: bottom + 1, W: w, H: 1}

	listWidth := w
	if hasPreview && w >= minPreviewTerminalWidth {
		previewWidth := w * previewWidthPercent / 100
		listWidth = w - previewWidth
		m.preview = geom.Rect{X: listWidth + 1, Y: y, W: previewWidth - 1, H: bottom - y}
	}

	height := bottom - y
	m.numRows = height / lineHeight
	if m.numRows < 1 {
		m.numRows = 1
	}
	// Spread leftover lines over the rows.
	m.rowHeight = height / m.numRows
	if m.rowHeight < 1 {
		m.rowHeight = 1
	}

	m.list = geom.Rect{X: 0, Y: y, W: listWidth - 1, H: height}
	m.touch = m.list
	m.scrollbar = geom.Rect{X: listWidth - 1, Y: y, W: 1, H: height}
	return m
}

// rowRect returns the rectangle of the i-th visible row.
func (m layoutMetrics) rowRect(i int) geom.Rect {
	return m.list.Row(i, m.rowHeight)
}
