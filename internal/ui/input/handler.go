package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
)

// EventSource delivers terminal events. tcell.Screen satisfies it.
type EventSource interface {
	PollEvent() tcell.Event
}

// InputHandler converts tcell events into button presses and keeps the
// pointer state that stands in for the touchscreen.
type InputHandler struct {
	events EventSource
	keymap *Keymap

	mouse   bool
	pressed bool
	x, y    int
}

// NewInputHandler reads events from src. A nil keymap uses DefaultKeymap.
func NewInputHandler(src EventSource, keymap *Keymap) *InputHandler {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &InputHandler{events: src, keymap: keymap}
}

// EnableTouch makes mouse events count as touches.
func (ih *InputHandler) EnableTouch(enabled bool) {
	ih.mouse = enabled
	if !enabled {
		ih.pressed = false
	}
}

// WaitForButton blocks until the next event. Pointer and resize events
// return ButtonNone so the caller repaints and polls the touch state. A
// finalized screen reads as ButtonMenu.
func (ih *InputHandler) WaitForButton() Button {
	for {
		ev := ih.events.PollEvent()
		if ev == nil {
			return ButtonMenu
		}
		if button, ok := ih.ProcessEvent(ev); ok {
			return button
		}
	}
}

// ProcessEvent converts a tcell event. It returns false for events that
// should not wake the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) (Button, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		button := ih.keymap.Lookup(ev)
		if button == ButtonNone {
			logrus.WithField("key", ev.Name()).Debug("unbound key")
		}
		return button, true

	case *tcell.EventMouse:
		return ih.processMouseEvent(ev)

	case *tcell.EventResize:
		return ButtonNone, true

	default:
		return ButtonNone, false
	}
}

func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) (Button, bool) {
	if !ih.mouse {
		return ButtonNone, false
	}
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return ButtonUp, true
	case buttons&tcell.WheelDown != 0:
		return ButtonDown, true
	}

	ih.x, ih.y = ev.Position()
	pressed := buttons&tcell.Button1 != 0
	if !pressed && !ih.pressed {
		// plain motion
		return ButtonNone, false
	}
	ih.pressed = pressed
	return ButtonNone, true
}

// Available reports whether pointer input is enabled.
func (ih *InputHandler) Available() bool { return ih.mouse }

// Pressed reports whether the primary pointer button is held.
func (ih *InputHandler) Pressed() bool { return ih.mouse && ih.pressed }

// InRect reports whether the last pointer position lies inside r.
func (ih *InputHandler) InRect(r geom.Rect) bool {
	return ih.mouse && r.Contains(ih.x, ih.y)
}

// Position returns the last pointer position.
func (ih *InputHandler) Position() (int, int) { return ih.x, ih.y }
