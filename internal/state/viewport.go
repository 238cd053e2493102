package state

// UpdateViewport recomputes FirstVisible for the current selection. The
// window starts at 0 while everything fits or the selection sits in the
// first half page; otherwise the selection is kept in the lower half of the
// visible rows without running past the end of the collection.
func (s *BrowserState) UpdateViewport() {
	size := s.Lister.Size()
	rows := s.NumRows
	if rows < 1 {
		rows = 1
	}

	if size <= rows || s.Selected <= rows/2 {
		s.FirstVisible = 0
		return
	}

	last := s.Selected + (rows - rows/2)
	if last > size {
		last = size
	}
	s.FirstVisible = last - rows
}

// VisibleRange returns the half-open range of entries shown on screen.
func (s *BrowserState) VisibleRange() (first, last int) {
	rows := s.NumRows
	if rows < 1 {
		rows = 1
	}
	first = s.FirstVisible
	last = first + rows
	if size := s.Lister.Size(); last > size {
		last = size
	}
	if first > last {
		first = last
	}
	return first, last
}

// SetLayout stores the number of list rows and their height.
func (s *BrowserState) SetLayout(numRows, rowHeight int) {
	if numRows < 1 {
		numRows = 1
	}
	if rowHeight < 1 {
		rowHeight = 1
	}
	s.NumRows = numRows
	s.RowHeight = rowHeight
}
