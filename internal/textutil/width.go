package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const Ellipsis = "…"

// Width reports the number of terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width cells, ending it with an ellipsis
// when something was cut.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	if width <= 1 {
		return Ellipsis
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// TruncateLeft keeps the end of text, which for paths is the part that
// tells directories apart.
func TruncateLeft(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	if width <= 1 {
		return Ellipsis
	}

	runes := []rune(text)
	available := width - runewidth.RuneWidth('…')
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > available {
			break
		}
		used += w
		start--
	}
	var b strings.Builder
	b.WriteString(Ellipsis)
	b.WriteString(string(runes[start:]))
	return b.String()
}

// PadRight fills text with spaces up to width cells.
func PadRight(text string, width int) string {
	if pad := width - Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
