package fs

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CompareNames orders names case-insensitively, falling back to byte order
// so that names differing only by case keep a deterministic order.
func CompareNames(a, b string) int {
	if c := strings.Compare(sortKey(a), sortKey(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func sortKey(name string) string {
	return foldCase(norm.NFC.String(name))
}

type keyedEntry struct {
	key   string
	entry Entry
}

// mergeEntries returns a new sorted slice holding the union of previous and
// observed. Exact duplicate names collapse into one entry, the observed one
// winning. A parent-entry present in either input is pinned at index 0.
func mergeEntries(previous, observed []Entry) []Entry {
	byName := make(map[string]Entry, len(previous)+len(observed))
	for _, e := range previous {
		byName[e.Name] = e
	}
	for _, e := range observed {
		byName[e.Name] = e
	}

	var parent *Entry
	keyed := make([]keyedEntry, 0, len(byName))
	for name, e := range byName {
		if e.IsParent() {
			p := e
			parent = &p
			continue
		}
		keyed = append(keyed, keyedEntry{key: sortKey(name), entry: e})
	}

	slices.SortFunc(keyed, func(a, b keyedEntry) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.entry.Name, b.entry.Name)
	})

	result := make([]Entry, 0, len(byName))
	if parent != nil {
		result = append(result, *parent)
	}
	for _, k := range keyed {
		result = append(result, k.entry)
	}
	return result
}
