package state

// First moves the selection to the first row.
func (s *Selection) First() bool {
	if s.count == 0 {
		return false
	}
	old := s.index
	s.index = 0
	return old != s.index
}

// Last moves the selection to the last row.
func (s *Selection) Last() bool {
	if s.count == 0 {
		return false
	}
	old := s.index
	s.index = s.count - 1
	return old != s.index
}

// PageUp moves the selection up by the given page size.
func (s *Selection) PageUp(maxVisible int) bool {
	return s.moveBy(-s.pageSize(maxVisible))
}

// PageDown moves the selection down by the given page size.
func (s *Selection) PageDown(maxVisible int) bool {
	return s.moveBy(s.pageSize(maxVisible))
}

// Offset returns the index of the first visible row.
func (s *Selection) Offset() int {
	return s.offset
}

func (s *Selection) moveBy(delta int) bool {
	if s.count == 0 {
		return false
	}
	old := s.index
	if s.index < 0 {
		s.index = 0
	}
	s.index += delta
	if s.index < 0 {
		s.index = 0
	}
	if s.index >= s.count {
		s.index = s.count - 1
	}
	return s.index != old
}

func (s *Selection) pageSize(maxVisible int) int {
	if s.count == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > s.count {
		size = s.count
	}
	return size
}

// EnsureVisible adjusts the viewport offset so the selected row stays within
// a window of maxVisible rows.
func (s *Selection) EnsureVisible(maxVisible int) {
	if s.count == 0 {
		s.offset = 0
		return
	}
	if maxVisible <= 0 {
		s.offset = 0
		return
	}
	maxOffset := s.count - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
	if s.index < s.offset {
		s.offset = s.index
	}
	if upper := s.offset + maxVisible - 1; s.index > upper {
		s.offset = s.index - maxVisible + 1
		if s.offset > maxOffset {
			s.offset = maxOffset
		}
	}
}
