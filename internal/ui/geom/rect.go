package geom

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Row returns the i-th band of height h starting at the top of r.
func (r Rect) Row(i, h int) Rect {
	return Rect{X: r.X, Y: r.Y + i*h, W: r.W, H: h}
}
