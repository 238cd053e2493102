package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	"github.com/kk-code-lab/fbrowse/internal/textutil"
	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
)

// View carries what a session variant adds to the page.
type View struct {
	Title    string
	Subtitle string
	Buttons  []ButtonHint
	Preview  Preview
}

// Preview paints extra content next to the list.
type Preview interface {
	PaintPreview(s Surface, area geom.Rect, state *statepkg.BrowserState)
}

// TouchProbe is the part of the touch input the painter needs.
type TouchProbe interface {
	Pressed() bool
	InRect(r geom.Rect) bool
}

// Renderer paints the browser page.
type Renderer struct {
	surface Surface
	theme   ColorTheme
	keys    KeyLabeler
}

// NewRenderer creates a renderer drawing on surface. keys may be nil, in
// which case hints show button names.
func NewRenderer(surface Surface, theme ColorTheme, keys KeyLabeler) *Renderer {
	return &Renderer{
		surface: surface,
		theme:   theme,
		keys:    keys,
	}
}

func (r *Renderer) Theme() ColorTheme { return r.theme }

func (r *Renderer) layout(state *statepkg.BrowserState, view View) layoutMetrics {
	w, h := r.surface.Size()
	return computeLayout(w, h, r.surface.LineHeight(), view.Subtitle != "", state.Path != "", view.Preview != nil)
}

// Layout reports the number of list rows, their height and the region in
// which touches select rows.
func (r *Renderer) Layout(state *statepkg.BrowserState, view View) (numRows, rowHeight int, touch geom.Rect) {
	m := r.layout(state, view)
	return m.numRows, m.rowHeight, m.touch
}

// Render draws the entire page based on state. When touch reports a press
// on one of the rows, the index of that entry is returned, otherwise -1.
func (r *Renderer) Render(state *statepkg.BrowserState, view View, touch TouchProbe) int {
	m := r.layout(state, view)

	r.surface.Clear()
	w, h := r.surface.Size()
	r.surface.FillRect(geom.Rect{W: w, H: h}, r.theme.base())

	r.drawHeader(state, view, m)
	touched := r.drawList(state, m, touch)
	r.drawScrollBar(m.scrollbar, m.numRows, state.Size(), state.FirstVisible)
	if view.Preview != nil && !m.preview.Empty() {
		r.surface.SetClip(m.preview)
		view.Preview.PaintPreview(r.surface, m.preview, state)
		r.surface.ClearClip()
	}
	r.drawStatusLine(state, m.status)
	r.drawButtonBox(m.buttons, view.Buttons)

	r.surface.Show()
	return touched
}

// drawHeader renders the title bar, the subtitle and the current path.
func (r *Renderer) drawHeader(state *statepkg.BrowserState, view View, m layoutMetrics) {
	titleStyle := r.theme.base().Background(r.theme.TitleBg).Foreground(r.theme.TitleFg)
	r.surface.FillRect(m.title, titleStyle)

	position := ""
	if size := state.Size(); size > 0 {
		position = fmt.Sprintf("%d/%d ", state.Selected+1, size)
	}
	titleArea := m.title
	titleArea.X++
	titleArea.W -= textutil.Width(position) + 2
	r.surface.WriteText(titleArea, textutil.SanitizeName(view.Title), AlignLeft, AlignTop, titleStyle.Bold(true))
	r.surface.WriteText(m.title, position, AlignRight, AlignTop, titleStyle)

	if !m.subtitle.Empty() {
		area := m.subtitle
		area.X++
		area.W--
		r.surface.WriteText(area, textutil.SanitizeName(view.Subtitle), AlignLeft, AlignTop,
			r.theme.base().Foreground(r.theme.SubtitleFg))
	}

	if !m.path.Empty() {
		area := m.path
		area.X++
		area.W -= 2
		path := textutil.TruncateLeft(textutil.SanitizeName(state.Path), area.W)
		r.surface.WriteText(area, path, AlignLeft, AlignBottom,
			r.theme.base().Foreground(r.theme.PathFg).Bold(true))
	}
}

// drawList paints the visible rows and returns the entry a touch is
// pressing, or -1.
func (r *Renderer) drawList(state *statepkg.BrowserState, m layoutMetrics, touch TouchProbe) int {
	r.surface.SetClip(m.list)
	defer r.surface.ClearClip()

	lister := state.Lister
	if lister.Size() == 0 {
		r.surface.WriteText(m.rowRect(0), " (no items)", AlignLeft, AlignMiddle,
			r.theme.base().Foreground(r.theme.EmptyFg).Italic(true))
		return -1
	}

	showIcons := lister.ShowDirectories()
	touched := -1
	first, last := state.VisibleRange()
	for i := first; i < last; i++ {
		row := m.rowRect(i - first)
		entry := lister.At(i)
		selected := i == state.Selected

		style := r.entryStyle(entry)
		if selected {
			style = r.theme.base().Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			r.surface.FillRect(row, style)
		}

		text := " " + textutil.SanitizeName(entry.Name)
		if showIcons {
			text = fmt.Sprintf(" %c %s", entryIcon(entry), textutil.SanitizeName(entry.Name))
		}
		r.surface.WriteText(row, text, AlignLeft, AlignMiddle, style)

		if touch != nil && touch.Pressed() && touch.InRect(m.touch.Row(i-first, m.rowHeight)) {
			touched = i
		}
	}
	return touched
}

func (r *Renderer) entryStyle(entry fsutil.Entry) tcell.Style {
	base := r.theme.base()
	switch {
	case entry.IsParent():
		return base.Foreground(r.theme.ParentFg)
	case entry.IsDir():
		return base.Foreground(r.theme.DirectoryFg).Bold(true)
	case entry.Synthetic:
		return base.Foreground(r.theme.SyntheticFg).Italic(true)
	default:
		return base.Foreground(r.theme.FileFg)
	}
}

func entryIcon(entry fsutil.Entry) rune {
	switch {
	case entry.IsParent():
		return '^'
	case entry.IsDir():
		return '/'
	case entry.Synthetic:
		return '+'
	default:
		return ' '
	}
}

// drawScrollBar shows which part of a size-entry list is visible when it
// does not fit in numRows.
func (r *Renderer) drawScrollBar(area geom.Rect, numRows, size, first int) {
	if area.Empty() || size <= numRows {
		return
	}
	trackStyle := r.theme.base().Foreground(r.theme.ScrollbarBg)
	thumbStyle := r.theme.base().Foreground(r.theme.ScrollbarFg)

	thumb := area.H * numRows / size
	if thumb < 1 {
		thumb = 1
	}
	pos := (area.H - thumb) * first / (size - numRows)

	for y := 0; y < area.H; y++ {
		ch, style := '│', trackStyle
		if y >= pos && y < pos+thumb {
			ch, style = '┃', thumbStyle
		}
		r.surface.SetCell(area.X, area.Y+y, ch, style)
	}
}

// drawStatusLine describes the selected entry on the left and the listing
// on the right. A failed scan replaces the description.
func (r *Renderer) drawStatusLine(state *statepkg.BrowserState, area geom.Rect) {
	style := r.theme.base().Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	r.surface.FillRect(area, style)

	counts := describeCounts(state.Lister)
	right := area
	right.W--
	r.surface.WriteText(right, counts, AlignRight, AlignTop, style)

	left := area
	left.X++
	left.W -= textutil.Width(counts) + 3
	if state.LastError != nil {
		r.surface.WriteText(left, textutil.SanitizeName(state.LastError.Error()), AlignLeft, AlignTop,
			style.Foreground(tcell.ColorRed))
		return
	}
	if entry := state.SelectedEntry(); entry != nil {
		r.surface.WriteText(left, describeEntry(*entry), AlignLeft, AlignTop, style)
	}
}

func describeEntry(entry fsutil.Entry) string {
	switch {
	case entry.IsParent():
		return "parent folder"
	case entry.Synthetic:
		return "new file"
	case entry.IsDir():
		if entry.Modified.IsZero() {
			return "folder"
		}
		return "folder, modified " + humanize.Time(entry.Modified)
	}
	desc := humanize.IBytes(uint64(max(entry.Size, 0)))
	if !entry.Modified.IsZero() {
		desc += ", modified " + humanize.Time(entry.Modified)
	}
	return desc
}

func describeCounts(lister *fsutil.Lister) string {
	dirs := lister.DirCount()
	if dirs > 0 && lister.IsParentEntry(0) {
		dirs--
	}
	files := lister.FileCount()

	switch {
	case dirs == 0 && files == 0:
		return ""
	case dirs == 0:
		return plural(files, "file")
	case files == 0:
		return plural(dirs, "folder")
	default:
		return plural(dirs, "folder") + ", " + plural(files, "file")
	}
}

func plural(n int, word string) string {
	if n != 1 {
		word += "s"
	}
	return humanize.Comma(int64(n)) + " " + word
}
