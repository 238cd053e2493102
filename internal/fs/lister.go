package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// Lister scans one directory at a time and keeps its children as two sorted
// sequences, directories first and files second, addressed through a single
// combined index space.
type Lister struct {
	filter   Filter
	excludes []excludePattern

	showDirectories bool
	showParent      bool
	showFiles       bool

	directories []Entry
	files       []Entry
}

type excludePattern struct {
	raw string
	g   glob.Glob
}

// NewLister creates a lister that shows directories, the parent-entry and
// all files.
func NewLister() *Lister {
	return &Lister{
		showDirectories: true,
		showParent:      true,
		showFiles:       true,
	}
}

// SetFilter replaces the extension filter from a comma separated list.
func (l *Lister) SetFilter(list string) {
	l.filter = ParseFilter(list)
}

// Filter returns the active extension filter.
func (l *Lister) Filter() Filter {
	return l.filter
}

// AddExclude skips children whose name matches the glob pattern.
func (l *Lister) AddExclude(pattern string) error {
	g, err := glob.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
	}
	l.excludes = append(l.excludes, excludePattern{raw: pattern, g: g})
	return nil
}

// Excludes returns the exclude patterns in the order they were added.
func (l *Lister) Excludes() []string {
	patterns := make([]string, len(l.excludes))
	for i, ex := range l.excludes {
		patterns[i] = ex.raw
	}
	return patterns
}

func (l *Lister) SetShowDirectories(show bool) { l.showDirectories = show }
func (l *Lister) SetShowParentEntry(show bool) { l.showParent = show }
func (l *Lister) SetShowFiles(show bool)       { l.showFiles = show }

func (l *Lister) ShowDirectories() bool { return l.showDirectories }
func (l *Lister) ShowParentEntry() bool { return l.showParent }
func (l *Lister) ShowFiles() bool       { return l.showFiles }

// Scan reads the children of path. With reset the previous collection is
// replaced, otherwise the new names are merged into it.
//
// A missing directory is reported through the returned error only; other
// failures are also logged. In both cases the collection is left as it was.
func (l *Lister) Scan(path string, reset bool) error {
	if path == "" {
		return fmt.Errorf("scan: empty path: %w", iofs.ErrInvalid)
	}
	slashed := WithTrailingSlash(path)
	log := logrus.WithField("path", slashed)

	dir, err := os.Open(slashed)
	if err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			log.WithError(err).Warn("unable to open directory")
		}
		return fmt.Errorf("cannot open directory %s: %w", slashed, err)
	}
	defer func() {
		_ = dir.Close()
	}()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		log.WithError(err).Warn("unable to read directory")
		return fmt.Errorf("cannot read directory %s: %w", slashed, err)
	}

	var dirs, files []Entry
	if l.showDirectories && l.showParent && slashed != "/" {
		dirs = append(dirs, Entry{Name: ParentEntryName, Kind: KindDirectory, Synthetic: true})
	}

	for _, name := range names {
		if IsHidden(name) || l.isExcluded(name) {
			continue
		}

		info, err := os.Stat(slashed + name)
		if err != nil {
			log.WithError(err).WithField("entry", name).Warn("stat failed, skipping entry")
			continue
		}

		entry := Entry{
			Name:     name,
			Size:     info.Size(),
			Modified: info.ModTime(),
		}
		if info.IsDir() {
			if !l.showDirectories {
				continue
			}
			entry.Kind = KindDirectory
			entry.Size = 0
			dirs = append(dirs, entry)
			continue
		}

		if !l.showFiles || !l.filter.Match(name) {
			continue
		}
		entry.Kind = KindFile
		files = append(files, entry)
	}

	if reset {
		l.directories = mergeEntries(nil, dirs)
		l.files = mergeEntries(nil, files)
	} else {
		l.directories = mergeEntries(l.directories, dirs)
		l.files = mergeEntries(l.files, files)
	}

	log.WithFields(logrus.Fields{
		"directories": len(l.directories),
		"files":       len(l.files),
	}).Debug("directory scanned")
	return nil
}

func (l *Lister) isExcluded(name string) bool {
	for _, ex := range l.excludes {
		if ex.g.Match(name) {
			return true
		}
	}
	return false
}

// Clear drops every entry.
func (l *Lister) Clear() {
	l.directories = nil
	l.files = nil
}

// InsertSynthetic puts a file that does not exist on disk in front of the
// files sequence.
func (l *Lister) InsertSynthetic(name string) {
	files := make([]Entry, 0, len(l.files)+1)
	files = append(files, Entry{Name: name, Kind: KindFile, Synthetic: true})
	l.files = append(files, l.files...)
}

func (l *Lister) Size() int      { return len(l.directories) + len(l.files) }
func (l *Lister) DirCount() int  { return len(l.directories) }
func (l *Lister) FileCount() int { return len(l.files) }

// At returns the entry at index i of the combined index space. It panics
// when i is out of range; callers check against Size first.
func (l *Lister) At(i int) Entry {
	if i < 0 || i >= l.Size() {
		panic(fmt.Sprintf("fs: index %d out of range [0,%d)", i, l.Size()))
	}
	if i < len(l.directories) {
		return l.directories[i]
	}
	return l.files[i-len(l.directories)]
}

// Name returns the name of the entry at index i.
func (l *Lister) Name(i int) string {
	return l.At(i).Name
}

func (l *Lister) IsDirectory(i int) bool {
	return i >= 0 && i < len(l.directories)
}

func (l *Lister) IsFile(i int) bool {
	return i >= len(l.directories) && i < l.Size()
}

// IsParentEntry reports whether index i holds the parent-entry.
func (l *Lister) IsParentEntry(i int) bool {
	return l.IsDirectory(i) && l.directories[i].IsParent()
}

// Directories returns the names of the directories sequence.
func (l *Lister) Directories() []string {
	return entryNames(l.directories)
}

// Files returns the names of the files sequence.
func (l *Lister) Files() []string {
	return entryNames(l.files)
}

// Entries returns a copy of the combined collection.
func (l *Lister) Entries() []Entry {
	entries := make([]Entry, 0, l.Size())
	entries = append(entries, l.directories...)
	return append(entries, l.files...)
}

// IndexOfDirectory returns the combined index of the named directory or -1.
func (l *Lister) IndexOfDirectory(name string) int {
	for i, e := range l.directories {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// IndexOfFile returns the combined index of the named file or -1.
func (l *Lister) IndexOfFile(name string) int {
	for i, e := range l.files {
		if e.Name == name {
			return len(l.directories) + i
		}
	}
	return -1
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// WithTrailingSlash appends "/" to a non-empty path that lacks one.
func WithTrailingSlash(path string) string {
	if path == "" || strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
