package views

// Scroller tracks a cursor over a list and the window of rows that fits on
// screen, scrolling just enough to keep the cursor visible
type Scroller struct {
	size   int
	offset int
	cursor int
	total  int
}

// NewScroller creates a scroller showing size rows at a time
func NewScroller(size int) *Scroller {
	if size <= 0 {
		size = 1
	}
	return &Scroller{size: size}
}

// SetSize changes the number of visible rows
func (s *Scroller) SetSize(size int) {
	if size <= 0 {
		size = 1
	}
	s.size = size
	s.follow()
}

// SetTotal sets the list length and clamps the cursor into it
func (s *Scroller) SetTotal(total int) {
	s.total = total
	s.SetCursor(s.cursor)
}

// Total returns the list length
func (s *Scroller) Total() int {
	return s.total
}

// Cursor returns the cursor position
func (s *Scroller) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor, clamped to the list
func (s *Scroller) SetCursor(pos int) {
	if pos >= s.total {
		pos = s.total - 1
	}
	if pos < 0 {
		pos = 0
	}
	s.cursor = pos
	s.follow()
}

// Up moves the cursor up one row
func (s *Scroller) Up() bool {
	if s.cursor == 0 {
		return false
	}
	s.SetCursor(s.cursor - 1)
	return true
}

// Down moves the cursor down one row
func (s *Scroller) Down() bool {
	if s.cursor >= s.total-1 {
		return false
	}
	s.SetCursor(s.cursor + 1)
	return true
}

// Visible returns the half-open range of rows on screen
func (s *Scroller) Visible() (start, end int) {
	return s.offset, min(s.offset+s.size, s.total)
}

// Hidden returns how many rows are above and below the window
func (s *Scroller) Hidden() (above, below int) {
	start, end := s.Visible()
	return start, s.total - end
}

func (s *Scroller) follow() {
	switch {
	case s.cursor < s.offset:
		s.offset = s.cursor
	case s.cursor >= s.offset+s.size:
		s.offset = s.cursor - s.size + 1
	}
	if last := s.total - s.size; s.offset > last {
		s.offset = last
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
