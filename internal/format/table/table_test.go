package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Name", "Item 2"},
		{"Description", "I'm the middle item!"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"Name         Item 2",
		"Description  I'm the middle item!",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignmentAndRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "1"}, {"bbb"}, {"cc", "100"}}, []Alignment{AlignLeft, AlignRight})
	want := []string{"a      1", "bbb     ", "cc   100"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestFormatIgnoresStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	got := Format([][]string{{styled, "x"}, {"abcd", "y"}}, nil)
	if w := lipgloss.Width(got[0]); w != lipgloss.Width(got[1]) {
		t.Fatalf("expected equal visible widths, got %d and %d", w, lipgloss.Width(got[1]))
	}
}

func TestSpread(t *testing.T) {
	if got := Spread("Pick something", "none", 24); got != "Pick something      none" {
		t.Fatalf("unexpected spread %q", got)
	}
	if got := Spread("Pick something", "Item 1", 5); got != "Pick something  Item 1" {
		t.Fatalf("expected minimum gap, got %q", got)
	}
	if got := Spread("left", "", 20); got != "left" {
		t.Fatalf("expected left only, got %q", got)
	}
}
