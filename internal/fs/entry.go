package fs

import "time"

// ParentEntryName is the name of the synthetic entry that leads to the
// parent directory.
const ParentEntryName = ".."

// Kind classifies an entry of the collection.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry represents a single child of the scanned directory.
type Entry struct {
	Name      string
	Kind      Kind
	Size      int64
	Modified  time.Time
	Synthetic bool
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsParent reports whether the entry is the synthetic parent-directory entry.
func (e Entry) IsParent() bool {
	return e.Kind == KindDirectory && e.Name == ParentEntryName
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}
