package fs

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter restricts the files of a listing to a set of extensions.
// The zero value accepts every file.
type Filter struct {
	extensions []string
}

// ParseFilter builds a Filter from a comma separated list of extensions.
// An empty list or "*" accepts every file. An empty item in a non-empty
// list (for example "png,") accepts files without an extension.
func ParseFilter(list string) Filter {
	if strings.TrimSpace(list) == "" || list == "*" {
		return Filter{}
	}

	parts := strings.Split(list, ",")
	extensions := make([]string, 0, len(parts))
	for _, part := range parts {
		ext := strings.TrimPrefix(strings.TrimSpace(part), ".")
		extensions = append(extensions, foldCase(ext))
	}
	return Filter{extensions: extensions}
}

// Empty reports whether the filter accepts every file.
func (f Filter) Empty() bool {
	return len(f.extensions) == 0
}

// Extensions returns the case-folded extensions of the filter.
func (f Filter) Extensions() []string {
	return append([]string(nil), f.extensions...)
}

// Match reports whether a file name passes the filter.
func (f Filter) Match(name string) bool {
	if f.Empty() {
		return true
	}

	hasDot := strings.Contains(name, ".")
	folded := foldCase(name)
	for _, ext := range f.extensions {
		if !hasDot {
			if ext == "" {
				return true
			}
			continue
		}
		if ext == "" {
			continue
		}
		if strings.HasSuffix(folded, "."+ext) {
			return true
		}
	}
	return false
}

func (f Filter) String() string {
	if f.Empty() {
		return "*"
	}
	return strings.Join(f.extensions, ",")
}

func foldCase(s string) string {
	return cases.Fold().String(s)
}
