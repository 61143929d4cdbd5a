package state

// Selection tracks the highlighted row of the visible list and the viewport
// offset used to scroll it. An empty list has no selection.
type Selection struct {
	index  int
	count  int
	offset int
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{index: -1}
}

// Reset points the selection at the first of n rows, or clears it when n is 0.
func (s *Selection) Reset(n int) {
	if n < 0 {
		n = 0
	}
	s.count = n
	s.offset = 0
	if n == 0 {
		s.index = -1
		return
	}
	s.index = 0
}

// Index returns the selected row, or false when nothing is selected.
func (s *Selection) Index() (int, bool) {
	if s.index < 0 || s.index >= s.count {
		return 0, false
	}
	return s.index, true
}

// Len returns the number of rows the selection ranges over.
func (s *Selection) Len() int {
	return s.count
}

// Next moves one row down, stopping at the last row.
func (s *Selection) Next() bool {
	return s.moveBy(1)
}

// Previous moves one row up, stopping at the first row.
func (s *Selection) Previous() bool {
	return s.moveBy(-1)
}

// Confirm returns the selected entry of items.
func (s *Selection) Confirm(items []string) (string, bool) {
	idx, ok := s.Index()
	if !ok || idx >= len(items) {
		return "", false
	}
	return items[idx], true
}
