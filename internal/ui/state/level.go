package state

// Level tracks cursor and scroll state for one screen of rows. Rows
// themselves live with the screen; Level only knows how many there are.
type Level struct {
	ID             string
	Title          string
	Len            int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level for n rows with the cursor on the first row.
func NewLevel(id, title string, n int) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.SetLen(n)
	return l
}

// SetLen updates the row count, clamping the cursor and viewport.
func (l *Level) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	l.Len = n
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// SetCursor places the cursor on idx when it is in range.
func (l *Level) SetCursor(idx int) bool {
	if idx < 0 || idx >= l.Len || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	return true
}

// RememberCursor stores the cursor so it can be restored after a child
// screen closes.
func (l *Level) RememberCursor() {
	l.LastCursor = l.Cursor
}

// RestoreCursor moves the cursor back to the remembered row, if any.
func (l *Level) RestoreCursor() {
	if l.LastCursor >= 0 && l.LastCursor < l.Len {
		l.Cursor = l.LastCursor
	}
	l.LastCursor = -1
}
