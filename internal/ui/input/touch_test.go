package input

import (
	"testing"

	"github.com/kk-code-lab/fbrowse/internal/ui/geom"
)

type fakeTouch struct {
	available bool
	pressed   bool
	x, y      int
}

func (f *fakeTouch) Available() bool         { return f.available }
func (f *fakeTouch) Pressed() bool           { return f.pressed }
func (f *fakeTouch) InRect(r geom.Rect) bool { return r.Contains(f.x, f.y) }

func TestTouchTrackerReleaseInsideList(t *testing.T) {
	list := geom.Rect{X: 0, Y: 2, W: 20, H: 10}
	touch := &fakeTouch{available: true, pressed: true, x: 3, y: 4}
	var tracker TouchTracker

	tracker.Arm()
	tracker.Observe(touch, list)
	if tracker.Released(touch, list) {
		t.Fatal("still pressed, no release expected")
	}

	touch.pressed = false
	if !tracker.Released(touch, list) {
		t.Fatal("expected release inside the list")
	}
	if tracker.Released(touch, list) {
		t.Fatal("release must be reported once")
	}
}

func TestTouchTrackerCancelsWhenLeavingList(t *testing.T) {
	list := geom.Rect{X: 0, Y: 2, W: 20, H: 10}
	touch := &fakeTouch{available: true, pressed: true, x: 3, y: 4}
	var tracker TouchTracker

	tracker.Arm()
	touch.y = 15
	tracker.Observe(touch, list)
	if tracker.Armed() {
		t.Fatal("moving out of the list should cancel tracking")
	}

	touch.pressed = false
	touch.y = 4
	if tracker.Released(touch, list) {
		t.Fatal("cancelled press must not produce a release")
	}
}

func TestTouchTrackerWithoutTouchscreen(t *testing.T) {
	list := geom.Rect{W: 10, H: 10}
	var tracker TouchTracker
	tracker.Arm()

	if tracker.Released(&fakeTouch{}, list) {
		t.Fatal("no release without a touchscreen")
	}
	if tracker.Released(nil, list) {
		t.Fatal("no release without a touch source")
	}
}
