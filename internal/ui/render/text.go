package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/fbrowse/internal/textutil"
	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
)

// ScreenSurface implements Surface on a tcell screen.
type ScreenSurface struct {
	screen tcell.Screen
	clip   geom.Rect
	clipOn bool
}

// NewScreenSurface wraps screen.
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

func (s *ScreenSurface) Size() (int, int) { return s.screen.Size() }
func (s *ScreenSurface) LineHeight() int  { return 1 }

func (s *ScreenSurface) SetClip(r geom.Rect) {
	s.clip = r
	s.clipOn = true
}

func (s *ScreenSurface) ClearClip() {
	s.clipOn = false
}

func (s *ScreenSurface) visible(x, y int) bool {
	return !s.clipOn || s.clip.Contains(x, y)
}

func (s *ScreenSurface) SetCell(x, y int, ch rune, style tcell.Style) {
	if s.visible(x, y) {
		s.screen.SetContent(x, y, ch, nil, style)
	}
}

func (s *ScreenSurface) FillRect(r geom.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetCell(x, y, ' ', style)
		}
	}
}

func (s *ScreenSurface) WriteText(r geom.Rect, text string, h HAlign, v VAlign, style tcell.Style) int {
	if r.Empty() {
		return r.X
	}
	text = textutil.Truncate(text, r.W)
	width := textutil.Width(text)

	x := r.X
	switch h {
	case AlignCenter:
		x += (r.W - width) / 2
	case AlignRight:
		x += r.W - width
	}

	y := r.Y
	switch v {
	case AlignMiddle:
		y += (r.H - 1) / 2
	case AlignBottom:
		y += r.H - 1
	}

	return s.drawTextLine(x, y, r.X+r.W, text, style)
}

// drawTextLine draws text from startX, attaching combining runes to the
// preceding cell, and stops at maxX.
func (s *ScreenSurface) drawTextLine(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) && x < maxX {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		if s.visible(x, y) {
			s.screen.SetContent(x, y, mainc, combc, style)
		}
		x += w
	}
	return x
}

// DrawImage maps each cell to two vertically stacked pixels using the upper
// half block, so the foreground is the top pixel and the background the
// bottom one.
func (s *ScreenSurface) DrawImage(img image.Image, r geom.Rect, background tcell.Color) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	cols := b.Dx()
	if cols > r.W {
		cols = r.W
	}
	rows := (b.Dy() + 1) / 2
	if rows > r.H {
		rows = r.H
	}
	offX := r.X + (r.W-cols)/2
	offY := r.Y + (r.H-rows)/2

	bg := tcellToColorful(background)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := pixelColor(img, b.Min.X+cx, b.Min.Y+cy*2, bg)
			bottom := pixelColor(img, b.Min.X+cx, b.Min.Y+cy*2+1, bg)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.SetCell(offX+cx, offY+cy, '▀', style)
		}
	}
}

func (s *ScreenSurface) Clear() { s.screen.Clear() }
func (s *ScreenSurface) Show()  { s.screen.Show() }

// pixelColor blends a possibly translucent pixel over bg.
func pixelColor(img image.Image, x, y int, bg colorful.Color) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return colorfulToTcell(bg)
	}
	px := img.At(x, y)
	c, ok := colorful.MakeColor(px)
	if !ok {
		return colorfulToTcell(bg)
	}
	_, _, _, a := px.RGBA()
	if a < 0xffff {
		c = bg.BlendRgb(c, float64(a)/0xffff)
	}
	return colorfulToTcell(c)
}

func colorfulToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func tcellToColorful(c tcell.Color) colorful.Color {
	if c == tcell.ColorDefault || !c.Valid() {
		return colorful.Color{}
	}
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
