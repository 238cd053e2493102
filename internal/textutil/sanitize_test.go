package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Zdjęcia wakacje 2024.png", "Zdjęcia wakacje 2024.png"},
		{"escape sequence", "bad\x1b[31m\npath", "bad?[31m path"},
		{"tab and carriage return", "a\tb\rc", "a b c"},
		{"delete and C1 control", "x\x7fy\u0085z", "x?y?z"},
		{"invalid UTF-8", "caf\xe9.txt", "caf?.txt"},
		{"line separator", "one\u2028two", "one two"},
		{"decomposed accent composed", "cafe\u0301.mp3", "caf\u00e9.mp3"},
		{"unnamed format rune", "soft\u00adhyphen", "soft⟪U+00AD⟫hyphen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.want {
				t.Fatalf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeNameLabelsBidiOverrides(t *testing.T) {
	input := "evil" + string(rune(0x202E)) + "gnp.exe" + string(rune(0x200B))
	got := SanitizeName(input)
	if strings.ContainsRune(got, 0x202E) || strings.ContainsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if got != "evil⟪RLO⟫gnp.exe⟪ZWSP⟫" {
		t.Fatalf("unexpected labels: %q", got)
	}
}

func TestSanitizeNameNeverEmitsControls(t *testing.T) {
	var b strings.Builder
	for r := rune(0); r < 0xa0; r++ {
		b.WriteRune(r)
	}
	for _, r := range SanitizeName(b.String()) {
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			t.Fatalf("control rune %U survived", r)
		}
	}
}
