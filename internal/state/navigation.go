package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const rootPath = "/"

// InitializePath resolves the first directory of a session. An empty request
// falls back to defaultRoot. While the directory cannot be scanned and
// directory browsing is enabled, the parent directory is tried instead,
// stopping at the filesystem root.
func (s *BrowserState) InitializePath(requested, defaultRoot string) error {
	path := requested
	if path == "" {
		path = defaultRoot
	}
	if path == "" {
		path = rootPath
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = withSlash(path)

	var err error
	for {
		err = s.Lister.Scan(path, true)
		if err == nil || !s.Lister.ShowDirectories() || path == rootPath {
			break
		}
		path = parentDir(path)
	}

	s.SetPath(path)
	s.Roots = nil
	s.Selected = 0
	if err != nil {
		s.Lister.Clear()
		s.LastError = err
		return err
	}
	s.LastError = nil
	s.seedVirtualFiles()
	return nil
}

// InitializeRoots lists several directories as one collection, as when the
// same kind of asset is searched for in a user and a system location. The
// state has no current path afterwards. Missing roots are skipped; an error
// is returned only when none could be read.
func (s *BrowserState) InitializeRoots(roots []string) error {
	s.Path = ""
	s.Roots = append([]string(nil), roots...)
	s.Selected = 0
	err := s.scanRoots()
	if err != nil {
		s.LastError = err
		return err
	}
	s.LastError = nil
	s.seedVirtualFiles()
	return nil
}

func (s *BrowserState) scanRoots() error {
	s.Lister.Clear()
	if len(s.Roots) == 0 {
		return errors.New("no roots to scan")
	}
	var errs []error
	for _, root := range s.Roots {
		if err := s.Lister.Scan(root, false); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(s.Roots) {
		return fmt.Errorf("no readable root: %w", errors.Join(errs...))
	}
	logrus.WithFields(logrus.Fields{
		"roots":   len(s.Roots),
		"entries": s.Lister.Size(),
	}).Debug("merged roots scanned")
	return nil
}

func (s *BrowserState) resolveInRoots(name string) string {
	for _, root := range s.Roots {
		candidate := withSlash(root) + name
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return withSlash(s.Roots[0]) + name
}

// seedVirtualFiles puts VirtualFiles in front of the files, skipping names
// that exist on disk.
func (s *BrowserState) seedVirtualFiles() {
	if !s.Lister.ShowFiles() {
		return
	}
	for i := len(s.VirtualFiles) - 1; i >= 0; i-- {
		name := s.VirtualFiles[i]
		if s.Lister.IndexOfFile(name) < 0 {
			s.Lister.InsertSynthetic(name)
		}
	}
}

// EnterDirectory descends into the selected directory. It does nothing when
// the selection is not a directory or is the parent-entry.
func (s *BrowserState) EnterDirectory() error {
	if !s.IsDirectorySelected() || s.Path == "" {
		return nil
	}

	newDir := withSlash(s.Path) + s.Lister.Name(s.Selected) + "/"
	s.SetPath(newDir)
	s.Selected = 0
	return s.rescan()
}

// GoUp moves to the parent directory and reselects the directory that was
// just left, or the first entry when it is gone.
func (s *BrowserState) GoUp() error {
	oldDir := withSlash(s.Path)
	if oldDir == rootPath || oldDir == "" {
		return nil
	}

	newDir := parentDir(oldDir)
	s.SetPath(newDir)
	err := s.rescan()

	oldName := strings.TrimSuffix(oldDir[len(newDir):], "/")
	if idx := s.Lister.IndexOfDirectory(oldName); idx >= 0 {
		s.Selected = idx
	} else {
		s.Selected = 0
	}
	return err
}

// Refresh rescans the current directory, keeping the selected name when it
// still exists.
func (s *BrowserState) Refresh() error {
	name := s.SelectedName()
	wasDir := s.HasSelection() && s.Lister.IsDirectory(s.Selected)

	err := s.rescan()

	switch {
	case name == "":
		s.Selected = 0
	case wasDir:
		if idx := s.Lister.IndexOfDirectory(name); idx >= 0 {
			s.Selected = idx
		} else {
			s.clampSelection()
		}
	default:
		if idx := s.Lister.IndexOfFile(name); idx >= 0 {
			s.Selected = idx
		} else {
			s.clampSelection()
		}
	}
	return err
}

// rescan replaces the collection with the contents of Path, or of Roots in
// a merged listing. A failed scan empties the collection so the list never
// shows another directory.
func (s *BrowserState) rescan() error {
	var err error
	if s.Path == "" && len(s.Roots) > 0 {
		err = s.scanRoots()
	} else {
		err = s.Lister.Scan(s.Path, true)
	}
	if err != nil {
		s.Lister.Clear()
		s.LastError = err
		return err
	}
	s.LastError = nil
	s.seedVirtualFiles()
	return nil
}

func (s *BrowserState) clampSelection() {
	size := s.Lister.Size()
	switch {
	case size == 0 || s.Selected < 0:
		s.Selected = 0
	case s.Selected >= size:
		s.Selected = size - 1
	}
}

// MoveUp selects the previous entry, wrapping to the last one.
func (s *BrowserState) MoveUp() {
	size := s.Lister.Size()
	if size == 0 {
		return
	}
	if s.Selected <= 0 || s.Selected >= size {
		s.Selected = size - 1
		return
	}
	s.Selected--
}

// MoveDown selects the next entry, wrapping to the first one.
func (s *BrowserState) MoveDown() {
	size := s.Lister.Size()
	if size == 0 {
		return
	}
	if s.Selected >= size-1 || s.Selected < 0 {
		s.Selected = 0
		return
	}
	s.Selected++
}

// PageUp moves the selection one page towards the start without wrapping.
func (s *BrowserState) PageUp() {
	size := s.Lister.Size()
	if size == 0 {
		return
	}
	step := s.pageStep()
	if s.Selected <= step {
		s.Selected = 0
		return
	}
	s.Selected -= step
	s.clampSelection()
}

// PageDown moves the selection one page towards the end without wrapping.
func (s *BrowserState) PageDown() {
	size := s.Lister.Size()
	if size == 0 {
		return
	}
	step := s.pageStep()
	if s.Selected+step >= size {
		s.Selected = size - 1
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	s.Selected += step
}

// pageStep keeps two rows of context when paging. Very small viewports
// still move by one entry.
func (s *BrowserState) pageStep() int {
	if s.NumRows-2 < 1 {
		return 1
	}
	return s.NumRows - 2
}

// parentDir returns the parent of a slash-terminated directory path, keeping
// the trailing slash. The parent of "/" is "/".
func parentDir(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx <= 0 {
		return rootPath
	}
	return trimmed[:idx+1]
}

func withSlash(path string) string {
	if path == "" || strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
