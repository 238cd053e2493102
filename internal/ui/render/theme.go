package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTheme defines the browser colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	TitleBg     tcell.Color
	TitleFg     tcell.Color
	SubtitleFg  tcell.Color
	PathFg      tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	ParentFg    tcell.Color
	FileFg      tcell.Color
	SyntheticFg tcell.Color
	EmptyFg     tcell.Color
	ScrollbarFg tcell.Color
	ScrollbarBg tcell.Color
	StatusBg    tcell.Color
	StatusFg    tcell.Color
	ButtonKeyBg tcell.Color
	ButtonKeyFg tcell.Color
	ButtonFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		TitleBg:     tcell.Color33,
		TitleFg:     tcell.ColorWhite,
		SubtitleFg:  tcell.ColorLightSlateGray,
		PathFg:      tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		ParentFg:    tcell.ColorLightSlateGray,
		FileFg:      tcell.ColorDefault,
		SyntheticFg: tcell.Color178,
		EmptyFg:     tcell.ColorLightSlateGray,
		ScrollbarFg: tcell.Color33,
		ScrollbarBg: tcell.Color236,
		StatusBg:    tcell.ColorDefault,
		StatusFg:    tcell.ColorLightSlateGray,
		ButtonKeyBg: tcell.Color238,
		ButtonKeyFg: tcell.ColorWhite,
		ButtonFg:    tcell.ColorDefault,
	}
}

func (t *ColorTheme) slots() map[string]*tcell.Color {
	return map[string]*tcell.Color{
		"background":    &t.Background,
		"foreground":    &t.Foreground,
		"title_bg":      &t.TitleBg,
		"title_fg":      &t.TitleFg,
		"subtitle_fg":   &t.SubtitleFg,
		"path_fg":       &t.PathFg,
		"selection_bg":  &t.SelectionBg,
		"selection_fg":  &t.SelectionFg,
		"directory_fg":  &t.DirectoryFg,
		"parent_fg":     &t.ParentFg,
		"file_fg":       &t.FileFg,
		"synthetic_fg":  &t.SyntheticFg,
		"empty_fg":      &t.EmptyFg,
		"scrollbar_fg":  &t.ScrollbarFg,
		"scrollbar_bg":  &t.ScrollbarBg,
		"status_bg":     &t.StatusBg,
		"status_fg":     &t.StatusFg,
		"button_key_bg": &t.ButtonKeyBg,
		"button_key_fg": &t.ButtonKeyFg,
		"button_fg":     &t.ButtonFg,
	}
}

// ApplyColors overrides theme slots from config. Values are tcell color
// names ("navy", "darkorange", "default") or "#rrggbb".
func (t *ColorTheme) ApplyColors(colors map[string]string) error {
	slots := t.slots()
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		slot, ok := slots[strings.ToLower(key)]
		if !ok {
			return fmt.Errorf("unknown theme color %q", key)
		}
		color, err := parseColor(colors[key])
		if err != nil {
			return fmt.Errorf("theme color %s: %w", key, err)
		}
		*slot = color
	}
	return nil
}

func parseColor(value string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", value)
	}
	return color, nil
}

func (t ColorTheme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}
