package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/fbrowse/internal/app"
	"github.com/kk-code-lab/fbrowse/internal/config"
	"github.com/kk-code-lab/fbrowse/internal/logging"
	inputui "github.com/kk-code-lab/fbrowse/internal/ui/input"
	renderui "github.com/kk-code-lab/fbrowse/internal/ui/render"
)

const (
	modeFile      = "file"
	modeDir       = "dir"
	modeWallpaper = "wallpaper"
	modeSave      = "save"
)

var errCancelled = errors.New("cancelled")

type options struct {
	path       string
	mode       string
	filter     string
	noDirs     bool
	noParent   bool
	exclude    []string
	configPath string
	output     string
	title      string
	newName    string
	touch      bool

	changed func(flag string) bool
}

func (o *options) flagChanged(name string) bool {
	return o.changed != nil && o.changed(name)
}

func run(stdout io.Writer, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	termOpts, err := terminalOptions(cfg, opts.touch)
	if err != nil {
		return err
	}

	term, err := app.OpenTerminal(termOpts)
	if err != nil {
		return err
	}

	session, err := newSession(term.UI, cfg, opts)
	if err != nil {
		_ = term.Close()
		return err
	}
	accepted, selected := session.Run(opts.path)
	_ = term.Close()

	if !accepted {
		return errCancelled
	}
	return writeResult(stdout, opts.output, selected)
}

// terminalOptions builds the keymap and theme from the config tables.
func terminalOptions(cfg *config.Config, touch bool) (app.TerminalOptions, error) {
	keymap := inputui.DefaultKeymap()
	if err := keymap.Apply(cfg.Keys); err != nil {
		return app.TerminalOptions{}, fmt.Errorf("keys: %w", err)
	}
	theme := renderui.GetColorTheme()
	if err := theme.ApplyColors(cfg.Theme); err != nil {
		return app.TerminalOptions{}, fmt.Errorf("theme: %w", err)
	}
	return app.TerminalOptions{Keymap: keymap, Theme: theme, Touch: touch}, nil
}

// newSession creates the dialog for opts.mode and applies config values,
// letting explicitly set flags win.
func newSession(ui app.UI, cfg *config.Config, opts *options) (*app.Session, error) {
	title := opts.title

	var session *app.Session
	switch opts.mode {
	case modeFile, "":
		if title == "" {
			title = "Select a file"
		}
		session = app.NewFileChooser(ui, title, "")
	case modeDir:
		if title == "" {
			title = "Select a folder"
		}
		session = app.NewDirectoryChooser(ui, title, "")
	case modeWallpaper:
		session = app.NewWallpaperChooser(ui, app.WallpaperRoots(cfg.SkinDirs, cfg.Skin))
		if title != "" {
			session.SetTitle(title)
		}
	case modeSave:
		if title == "" {
			title = "Save as"
		}
		session = app.NewSaveChooser(ui, title, opts.newName)
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.mode)
	}

	session.SetDefaultRoot(cfg.Root)

	// The wallpaper and directory dialogs own their listing toggles.
	switch opts.mode {
	case modeFile, "":
		session.SetShowFiles(cfg.ShowFiles)
		session.SetShowDirectories(cfg.ShowDirectories && !opts.noDirs)
	case modeSave:
		session.SetShowDirectories(cfg.ShowDirectories && !opts.noDirs)
	}
	if opts.mode != modeWallpaper {
		session.SetShowParentEntry(cfg.ShowParent && !opts.noParent)
		if cfg.Filter != "" {
			session.SetFilter(cfg.Filter)
		}
	}
	if opts.flagChanged("filter") {
		session.SetFilter(opts.filter)
	}

	for _, pattern := range append(append([]string{}, cfg.Exclude...), opts.exclude...) {
		if err := session.AddExclude(pattern); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"mode": opts.mode,
		"path": opts.path,
	}).Debug("session configured")
	return session, nil
}

func writeResult(stdout io.Writer, output, selected string) error {
	if output == "" {
		_, err := fmt.Fprintln(stdout, selected)
		return err
	}
	if err := os.WriteFile(output, []byte(selected), 0o600); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
