package app

import (
	"os"
	"path/filepath"

	fsutil "github.com/kk-code-lab/fbrowse/internal/fs"
	statepkg "github.com/kk-code-lab/fbrowse/internal/state"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
)

// Variant customizes a session: what it lists, where it starts, what it may
// return and what it paints next to the list.
type Variant interface {
	Title() string
	Subtitle() string
	Policy() statepkg.AcceptPolicy
	// Configure sets lister toggles and filters before the first scan.
	Configure(l *fsutil.Lister)
	InitPath(s *statepkg.BrowserState, requested, defaultRoot string) error
	InitSelection(s *statepkg.BrowserState, requested string)
	// Decorate returns the preview painter, or nil.
	Decorate(theme renderui.ColorTheme) renderui.Preview
}

// browseVariant is the plain file chooser. Other variants embed it.
type browseVariant struct {
	title    string
	subtitle string
}

func (v *browseVariant) Title() string                 { return v.title }
func (v *browseVariant) Subtitle() string              { return v.subtitle }
func (v *browseVariant) Policy() statepkg.AcceptPolicy { return statepkg.AcceptFiles }
func (v *browseVariant) Configure(*fsutil.Lister)      {}

func (v *browseVariant) Decorate(renderui.ColorTheme) renderui.Preview { return nil }

// InitPath starts in requested. A requested file starts in its directory.
func (v *browseVariant) InitPath(s *statepkg.BrowserState, requested, defaultRoot string) error {
	if requested != "" {
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			requested = filepath.Dir(requested)
		}
	}
	return s.InitializePath(requested, defaultRoot)
}

// InitSelection highlights the requested file when the session started in
// its directory.
func (v *browseVariant) InitSelection(s *statepkg.BrowserState, requested string) {
	if requested == "" || s.Path == "" {
		return
	}
	abs, err := filepath.Abs(requested)
	if err != nil {
		return
	}
	if filepath.Dir(abs)+"/" == s.Path || (filepath.Dir(abs) == "/" && s.Path == "/") {
		s.SelectByName(filepath.Base(abs))
	}
}

// NewFileChooser browses directories and returns a file.
func NewFileChooser(ui UI, title, subtitle string) *Session {
	return NewSession(ui, &browseVariant{title: title, subtitle: subtitle})
}

type directoryVariant struct {
	browseVariant
}

func (v *directoryVariant) Policy() statepkg.AcceptPolicy { return statepkg.AcceptDirectories }
func (v *directoryVariant) Configure(l *fsutil.Lister)    { l.SetShowFiles(false) }

// NewDirectoryChooser lists directories only and returns one of them.
func NewDirectoryChooser(ui UI, title, subtitle string) *Session {
	return NewSession(ui, &directoryVariant{browseVariant{title: title, subtitle: subtitle}})
}

type wallpaperVariant struct {
	browseVariant
	roots   []string
	preview *renderui.ThumbnailPreview
}

func (v *wallpaperVariant) Configure(l *fsutil.Lister) {
	l.SetShowDirectories(false)
	l.SetFilter("png")
}

// InitPath merges every root into one listing; the requested path only
// names the current wallpaper.
func (v *wallpaperVariant) InitPath(s *statepkg.BrowserState, _, _ string) error {
	return s.InitializeRoots(v.roots)
}

func (v *wallpaperVariant) InitSelection(s *statepkg.BrowserState, current string) {
	if current == "" {
		return
	}
	if idx := s.Lister.IndexOfFile(filepath.Base(current)); idx >= 0 {
		s.Selected = idx
	}
}

func (v *wallpaperVariant) Decorate(theme renderui.ColorTheme) renderui.Preview {
	if v.preview == nil {
		v.preview = renderui.NewThumbnailPreview(theme)
	}
	return v.preview
}

// NewWallpaperChooser lists the png files of all roots as one collection,
// earlier roots shadowing later ones, and previews the selected image. Run
// takes the path of the current wallpaper, which is selected initially.
func NewWallpaperChooser(ui UI, roots []string) *Session {
	return NewSession(ui, &wallpaperVariant{
		browseVariant: browseVariant{
			title:    "Wallpaper selection",
			subtitle: "Select a wallpaper from the list",
		},
		roots: roots,
	})
}

// WallpaperRoots returns the wallpaper directories of skin, searching each
// skin directory in order and falling back to the "Default" skin.
func WallpaperRoots(skinDirs []string, skin string) []string {
	skins := []string{skin}
	if skin != "Default" {
		skins = append(skins, "Default")
	}
	var roots []string
	for _, name := range skins {
		for _, dir := range skinDirs {
			roots = append(roots, filepath.Join(dir, name, "wallpapers"))
		}
	}
	return roots
}

type saveVariant struct {
	browseVariant
	newName string
}

func (v *saveVariant) InitPath(s *statepkg.BrowserState, requested, defaultRoot string) error {
	if v.newName != "" {
		s.VirtualFiles = []string{v.newName}
	}
	return v.browseVariant.InitPath(s, requested, defaultRoot)
}

// NewSaveChooser picks a file to write: an existing one or newName, which
// is offered at the top of every directory.
func NewSaveChooser(ui UI, title, newName string) *Session {
	return NewSession(ui, &saveVariant{
		browseVariant: browseVariant{title: title, subtitle: "Choose where to save"},
		newName:       newName,
	})
}
