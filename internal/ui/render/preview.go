package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
)

const thumbnailCacheSize = 32

// LoadThumbnail decodes the image at path and scales it to fit cols×rows
// cells, keeping its aspect ratio. Each cell holds two pixels vertically.
func LoadThumbnail(path string, cols, rows int) (image.Image, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("thumbnail area %dx%d is empty", cols, rows)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear), nil
}

type thumbnailKey struct {
	path       string
	cols, rows int
}

type thumbnailResult struct {
	img image.Image
	err error
}

// ThumbnailPreview shows the selected file as an image.
type ThumbnailPreview struct {
	theme ColorTheme
	cache map[thumbnailKey]thumbnailResult
}

func NewThumbnailPreview(theme ColorTheme) *ThumbnailPreview {
	return &ThumbnailPreview{
		theme: theme,
		cache: make(map[thumbnailKey]thumbnailResult),
	}
}

func (p *ThumbnailPreview) PaintPreview(s Surface, area geom.Rect, state *statepkg.BrowserState) {
	message := p.theme.base().Foreground(p.theme.EmptyFg).Italic(true)

	entry := state.SelectedEntry()
	if entry == nil || entry.IsDir() || entry.Synthetic {
		s.WriteText(area, "(no preview)", AlignCenter, AlignMiddle, message)
		return
	}

	img, err := p.thumbnail(state.SelectedPath(), area.W, area.H)
	if err != nil {
		s.WriteText(area, "(cannot preview)", AlignCenter, AlignMiddle, message)
		return
	}
	s.DrawImage(img, area, p.theme.Background)
}

func (p *ThumbnailPreview) thumbnail(path string, cols, rows int) (image.Image, error) {
	key := thumbnailKey{path: path, cols: cols, rows: rows}
	if res, ok := p.cache[key]; ok {
		return res.img, res.err
	}

	img, err := LoadThumbnail(path, cols, rows)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Debug("thumbnail unavailable")
	}
	if len(p.cache) >= thumbnailCacheSize {
		clear(p.cache)
	}
	p.cache[key] = thumbnailResult{img: img, err: err}
	return img, err
}
