package textutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Short names for the invisible formatting runes most often seen in
// spoofed file names. Other format runes are shown by code point.
var formatNames = map[rune]string{
	0x061C: "ALM",
	0x200B: "ZWSP",
	0x200C: "ZWNJ",
	0x200D: "ZWJ",
	0x200E: "LRM",
	0x200F: "RLM",
	0x202A: "LRE",
	0x202B: "RLE",
	0x202C: "PDF",
	0x202D: "LRO",
	0x202E: "RLO",
	0x2066: "LRI",
	0x2067: "RLI",
	0x2068: "FSI",
	0x2069: "PDI",
	0xFEFF: "BOM",
}

// SanitizeName prepares an entry name or path for a single display line.
// The result is NFC-normalized, whitespace controls become spaces, other
// controls (C0, DEL, C1) and invalid UTF-8 become '?', and formatting runes
// such as bidi overrides are spelled out in brackets. The raw name is still
// what gets joined into paths.
func SanitizeName(name string) string {
	clean := true
	for _, r := range name {
		if needsReplacement(r) {
			clean = false
			break
		}
	}
	if clean {
		return norm.NFC.String(name)
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '\t' || r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029:
			b.WriteByte(' ')
		case r == utf8.RuneError || unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			b.WriteString(formatLabel(r))
		default:
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}

func needsReplacement(r rune) bool {
	return r == utf8.RuneError || r == 0x2028 || r == 0x2029 ||
		unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}

func formatLabel(r rune) string {
	if name, ok := formatNames[r]; ok {
		return "⟪" + name + "⟫"
	}
	return fmt.Sprintf("⟪U+%04X⟫", r)
}
