package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Keymap binds terminal keys to logical buttons.
type Keymap struct {
	keys  map[tcell.Key]Button
	runes map[rune]Button
	names map[Button][]string // in binding order, for button hints
}

var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	m["return"] = tcell.KeyEnter
	return m
}()

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{
		keys:  make(map[tcell.Key]Button),
		runes: make(map[rune]Button),
		names: make(map[Button][]string),
	}
}

// DefaultKeymap returns the bindings used when the config has none.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	defaults := map[Button][]string{
		ButtonMenu:     {"Esc", "q", "Ctrl-C"},
		ButtonUp:       {"Up", "k"},
		ButtonDown:     {"Down", "j"},
		ButtonAltLeft:  {"PgUp", "Home"},
		ButtonAltRight: {"PgDn", "End"},
		ButtonCancel:   {"Left", "Backspace", "Backspace2", "h"},
		ButtonAccept:   {"Enter", "Right", "l"},
		ButtonSettings: {"Space", "s"},
		ButtonRefresh:  {"F5", "r"},
	}
	for button, names := range defaults {
		for _, name := range names {
			if err := km.Bind(button, name); err != nil {
				panic(err)
			}
		}
	}
	return km
}

// Bind maps the key called name to button. Names are tcell key names
// ("Enter", "PgUp", "Ctrl-C"), "Space", or a single character.
func (km *Keymap) Bind(button Button, name string) error {
	if name == "" {
		return fmt.Errorf("empty key name for %s", button)
	}
	switch {
	case strings.EqualFold(name, "space"):
		km.runes[' '] = button
		name = "Space"
	case utf8.RuneCountInString(name) == 1:
		r, _ := utf8.DecodeRuneInString(name)
		km.runes[r] = button
	default:
		key, ok := keysByName[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown key %q", name)
		}
		km.keys[key] = button
	}
	km.names[button] = append(km.names[button], name)
	return nil
}

// KeyLabel returns the name of the first key bound to button, or "".
func (km *Keymap) KeyLabel(button Button) string {
	if names := km.names[button]; len(names) > 0 {
		return names[0]
	}
	return ""
}

// Unbind removes every binding of button.
func (km *Keymap) Unbind(button Button) {
	for k, b := range km.keys {
		if b == button {
			delete(km.keys, k)
		}
	}
	for r, b := range km.runes {
		if b == button {
			delete(km.runes, r)
		}
	}
	delete(km.names, button)
}

// Apply replaces the bindings of each listed button. Keys of bindings are
// button names as accepted by ParseButton.
func (km *Keymap) Apply(bindings map[string][]string) error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		button, err := ParseButton(name)
		if err != nil {
			return err
		}
		km.Unbind(button)
		for _, key := range bindings[name] {
			if err := km.Bind(button, key); err != nil {
				return fmt.Errorf("binding %s: %w", name, err)
			}
		}
	}
	return nil
}

// Lookup returns the button bound to ev, or ButtonNone.
func (km *Keymap) Lookup(ev *tcell.EventKey) Button {
	if ev.Key() == tcell.KeyRune {
		return km.runes[ev.Rune()]
	}
	return km.keys[ev.Key()]
}
