package state

import fsutil "github.com/kk-code-lab/fbrowse/internal/fs"

// AcceptPolicy decides which entries a session may return as its result.
type AcceptPolicy interface {
	Accepts(l *fsutil.Lister, index int) bool
}

// AcceptPolicyFunc adapts a function to AcceptPolicy.
type AcceptPolicyFunc func(l *fsutil.Lister, index int) bool

func (f AcceptPolicyFunc) Accepts(l *fsutil.Lister, index int) bool {
	return f(l, index)
}

var (
	// AcceptFiles accepts files only. It is the default policy.
	AcceptFiles AcceptPolicy = AcceptPolicyFunc(func(l *fsutil.Lister, index int) bool {
		return l.IsFile(index)
	})

	// AcceptDirectories accepts any directory except the parent-entry.
	AcceptDirectories AcceptPolicy = AcceptPolicyFunc(func(l *fsutil.Lister, index int) bool {
		return l.IsDirectory(index) && !l.IsParentEntry(index)
	})

	// AcceptAny accepts files and directories, except the parent-entry.
	AcceptAny AcceptPolicy = AcceptPolicyFunc(func(l *fsutil.Lister, index int) bool {
		return index >= 0 && index < l.Size() && !l.IsParentEntry(index)
	})
)
