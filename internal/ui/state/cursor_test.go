package state

import "testing"

func newTestLevel(ids ...string) *Level {
	return NewLevel("test", "Test", len(ids))
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last row, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first row, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}

	single := newTestLevel("only")
	if single.MoveCursorDown() || single.MoveCursorUp() {
		t.Fatalf("expected no movement with a single row")
	}
	empty := newTestLevel()
	if empty.MoveCursorDown() || empty.MoveCursorUp() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestSetLenClampsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.SetLen(1)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}
	l.SetLen(0)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected reset for empty level, got cursor %d offset %d", l.Cursor, l.ViewportOffset)
	}
}

func TestRememberAndRestoreCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.RememberCursor()
	l.Cursor = 0
	l.RestoreCursor()
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected LastCursor reset, got %d", l.LastCursor)
	}
	l.RestoreCursor()
	if l.Cursor != 2 {
		t.Fatalf("expected restore without memory to keep cursor, got %d", l.Cursor)
	}
}

func TestSetCursor(t *testing.T) {
	l := newTestLevel("a", "b")
	if !l.SetCursor(1) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.SetCursor(1) {
		t.Fatalf("expected no change when cursor already at 1")
	}
	if l.SetCursor(5) || l.SetCursor(-1) {
		t.Fatalf("expected out of range indexes to be ignored")
	}
}

func TestRevealKeepsMultiLineSpanVisible(t *testing.T) {
	cases := []struct {
		name                              string
		offset, start, end, total, height int
		want                              int
	}{
		{"already visible", 2, 3, 5, 20, 5, 2},
		{"below window", 0, 6, 8, 20, 5, 3},
		{"above window", 10, 4, 6, 20, 5, 4},
		{"taller than window", 0, 6, 12, 20, 4, 6},
		{"clamped to end", 0, 18, 20, 20, 5, 15},
		{"unknown height", 7, 3, 4, 20, 0, 0},
		{"document shorter than window", 3, 0, 1, 2, 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reveal(tc.offset, tc.start, tc.end, tc.total, tc.height)
			if got != tc.want {
				t.Fatalf("expected offset %d, got %d", tc.want, got)
			}
		})
	}
}
