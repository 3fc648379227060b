package state

// MoveCursorUp moves the cursor up one row, wrapping to the last row.
func (l *Level) MoveCursorUp() bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = l.Len - 1
	}
	return old != l.Cursor
}

// MoveCursorDown moves the cursor down one row, wrapping to the first row.
func (l *Level) MoveCursorDown() bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < l.Len-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.Len - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	if l.Len == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.Len {
		size = l.Len
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible
// when every row is one line tall.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if l.Len == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
	l.ViewportOffset = Reveal(l.ViewportOffset, l.Cursor, l.Cursor+1, l.Len, maxVisible)
}

// Reveal returns a scroll offset, in lines, that keeps the span [start, end)
// of a total-line document inside a window of height lines. The current
// offset is kept when the span is already visible. Spans taller than the
// window are aligned to their first line.
func Reveal(offset, start, end, total, height int) int {
	if height <= 0 || total <= 0 {
		return 0
	}
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if end <= start {
		end = start + 1
	}
	if start < offset {
		offset = start
	}
	if end > offset+height {
		offset = end - height
		if end-start > height {
			offset = start
		}
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
