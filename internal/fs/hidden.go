package fs

// IsHidden reports whether a directory child is excluded from listings.
// The parent-entry is not covered by this rule; the lister adds it itself.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
