package input

import (
	"fmt"
	"strings"
)

// Button is a logical device button. Physical keys are bound to buttons
// through a Keymap.
type Button int

const (
	ButtonNone Button = iota
	ButtonMenu
	ButtonUp
	ButtonDown
	ButtonAltLeft
	ButtonAltRight
	ButtonCancel
	ButtonAccept
	ButtonSettings
	ButtonRefresh
)

var buttonNames = map[Button]string{
	ButtonNone:     "none",
	ButtonMenu:     "menu",
	ButtonUp:       "up",
	ButtonDown:     "down",
	ButtonAltLeft:  "alt_left",
	ButtonAltRight: "alt_right",
	ButtonCancel:   "cancel",
	ButtonAccept:   "accept",
	ButtonSettings: "settings",
	ButtonRefresh:  "refresh",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// ParseButton resolves a config name such as "accept" or "alt-left".
func ParseButton(name string) (Button, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for b, n := range buttonNames {
		if n == normalized && b != ButtonNone {
			return b, nil
		}
	}
	return ButtonNone, fmt.Errorf("unknown button %q", name)
}
