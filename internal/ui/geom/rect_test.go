package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectRowAndEmpty(t *testing.T) {
	r := Rect{X: 1, Y: 10, W: 20, H: 8}
	row := r.Row(3, 2)
	if row != (Rect{X: 1, Y: 16, W: 20, H: 2}) {
		t.Fatalf("unexpected row rect %+v", row)
	}
	if r.Empty() || !(Rect{W: 3}).Empty() {
		t.Fatal("unexpected Empty result")
	}
}
