package state

import fsutil "github.com/kk-code-lab/fbrowse/internal/fs"

// FileEntry mirrors fs.Entry so UI code can rely on a stable type.
type FileEntry = fsutil.Entry

// ===== STATE DEFINITIONS =====

// BrowserState is the single source of truth of one browsing session.
type BrowserState struct {
	// Navigation & filesystem
	Path   string         // always ends with "/" when non-empty
	Roots  []string       // merged listing of several directories; Path is empty
	Lister *fsutil.Lister // owned; rebuilt on every directory change

	// VirtualFiles are offered in front of the files of every listing.
	VirtualFiles []string

	// Selection & viewport
	Selected     int
	NumRows      int
	RowHeight    int
	FirstVisible int

	// Acceptance
	Policy AcceptPolicy

	// Termination
	Closed   bool
	Accepted bool

	// Error state
	LastError error
}

// NewBrowserState creates a state around lister. A nil policy accepts files.
func NewBrowserState(lister *fsutil.Lister, policy AcceptPolicy) *BrowserState {
	if lister == nil {
		lister = fsutil.NewLister()
	}
	if policy == nil {
		policy = AcceptFiles
	}
	return &BrowserState{
		Lister:    lister,
		Policy:    policy,
		NumRows:   1,
		RowHeight: 1,
	}
}

// ===== HELPER METHODS =====

// SetPath stores path, appending "/" when it is non-empty and lacks one.
func (s *BrowserState) SetPath(path string) {
	s.Path = fsutil.WithTrailingSlash(path)
}

// Size returns the number of entries in the collection.
func (s *BrowserState) Size() int {
	return s.Lister.Size()
}

// HasSelection reports whether Selected references an entry.
func (s *BrowserState) HasSelection() bool {
	return s.Selected >= 0 && s.Selected < s.Lister.Size()
}

// SelectedEntry returns the selected entry, or nil for an empty collection.
func (s *BrowserState) SelectedEntry() *FileEntry {
	if !s.HasSelection() {
		return nil
	}
	e := s.Lister.At(s.Selected)
	return &e
}

// SelectedName returns the name of the selected entry, or "".
func (s *BrowserState) SelectedName() string {
	if e := s.SelectedEntry(); e != nil {
		return e.Name
	}
	return ""
}

// SelectedPath joins the current path and the selected entry's name. In a
// merged listing the name is resolved against the first root holding it.
func (s *BrowserState) SelectedPath() string {
	name := s.SelectedName()
	if name == "" {
		return s.Path
	}
	if s.Path == "" && len(s.Roots) > 0 {
		return s.resolveInRoots(name)
	}
	return s.Path + name
}

// IsParentSelected reports whether the parent-entry is highlighted.
func (s *BrowserState) IsParentSelected() bool {
	return s.HasSelection() && s.Lister.IsParentEntry(s.Selected)
}

// IsDirectorySelected reports whether a real directory is highlighted.
func (s *BrowserState) IsDirectorySelected() bool {
	return s.HasSelection() && s.Lister.IsDirectory(s.Selected) && !s.Lister.IsParentEntry(s.Selected)
}

// CanConfirmSelection reports whether the selection may be returned.
func (s *BrowserState) CanConfirmSelection() bool {
	return s.HasSelection() && s.Policy.Accepts(s.Lister, s.Selected)
}

// SelectIndex moves the selection to index when it is in range.
func (s *BrowserState) SelectIndex(index int) bool {
	if index < 0 || index >= s.Lister.Size() {
		return false
	}
	s.Selected = index
	return true
}

// SelectByName selects the file, or failing that the directory, called name.
func (s *BrowserState) SelectByName(name string) bool {
	if idx := s.Lister.IndexOfFile(name); idx >= 0 {
		s.Selected = idx
		return true
	}
	if idx := s.Lister.IndexOfDirectory(name); idx >= 0 {
		s.Selected = idx
		return true
	}
	return false
}

// Confirm closes the session with an accepted result.
func (s *BrowserState) Confirm() {
	s.Closed = true
	s.Accepted = true
}

// Quit closes the session as cancelled.
func (s *BrowserState) Quit() {
	s.Closed = true
	s.Accepted = false
}
