package render

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
)

type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Surface is what the browser paints on. Coordinates are cells.
type Surface interface {
	Size() (width, height int)
	LineHeight() int

	// SetClip restricts every following draw call to r until ClearClip.
	SetClip(r geom.Rect)
	ClearClip()

	SetCell(x, y int, ch rune, style tcell.Style)
	FillRect(r geom.Rect, style tcell.Style)
	// WriteText draws one line of text aligned inside r, cutting it with an
	// ellipsis when it does not fit. It returns the column after the text.
	WriteText(r geom.Rect, text string, h HAlign, v VAlign, style tcell.Style) int
	// DrawImage paints img centered in r, two pixels per cell.
	DrawImage(img image.Image, r geom.Rect, background tcell.Color)

	Clear()
	Show()
}
