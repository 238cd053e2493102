package input

import "github.com/kk-code-lab/fbrowse/internal/ui/geom"

// TouchSource reports the current state of a pointing device.
type TouchSource interface {
	Available() bool
	Pressed() bool
	InRect(r geom.Rect) bool
}

// TouchTracker remembers whether the current press started on a list row.
type TouchTracker struct {
	armed bool
}

// Arm records that a row was pressed during the last render.
func (t *TouchTracker) Arm() { t.armed = true }

func (t *TouchTracker) Armed() bool { return t.armed }

func (t *TouchTracker) Reset() { t.armed = false }

// Observe cancels the press once the touch leaves the list region.
func (t *TouchTracker) Observe(ts TouchSource, list geom.Rect) {
	if ts == nil || !ts.Available() || !t.armed {
		return
	}
	if !ts.InRect(list) {
		t.armed = false
	}
}

// Released reports, once, that an armed press was lifted inside list.
func (t *TouchTracker) Released(ts TouchSource, list geom.Rect) bool {
	if ts == nil || !ts.Available() || !t.armed || ts.Pressed() {
		return false
	}
	t.armed = false
	return ts.InRect(list)
}
