package picker

import (
	"strings"
	"testing"

	"github.com/atomicstack/custom-picker/internal/binding"
	"github.com/atomicstack/custom-picker/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsOnePerOptionInOrder(t *testing.T) {
	for n := 0; n <= 4; n++ {
		opts := make([]Option[int], n)
		for i := range opts {
			opts[i] = WithTag(Text(strings.Repeat("x", i+1)), i)
		}
		rows := BuildRows(opts, -1)
		require.Len(t, rows, n)
		for i, row := range rows {
			require.Equal(t, i, row.Index)
			require.Equal(t, opts[i].View(), row.Content.View())
			require.False(t, row.Selected)
		}
	}
}

func TestBuildRowsSelectedState(t *testing.T) {
	opts := []Option[Optional[string]]{
		Plain[Optional[string]](Text("info")),
		WithTag(Text("none"), None[string]()),
		WithTag(Text("a"), Some("a")),
		WithTag(Text("b"), Some("b")),
		WithTag(Text("a again"), Some("a")),
	}

	selected := func(rows []Row[Optional[string]]) []bool {
		out := make([]bool, len(rows))
		for i, row := range rows {
			out[i] = row.Selected
		}
		return out
	}

	require.Equal(t, []bool{false, false, true, false, true}, selected(BuildRows(opts, Some("a"))), "duplicate tags both selected")
	require.Equal(t, []bool{false, true, false, false, false}, selected(BuildRows(opts, None[string]())))
	require.Equal(t, []bool{false, false, false, false, false}, selected(BuildRows(opts, Some("zzz"))))
	require.Equal(t, []bool{false, false, false, false, false}, selected(UnselectedRows(opts)))
}

func TestUnselectedRowsIgnoresZeroTag(t *testing.T) {
	opts := []Option[int]{WithTag(Text("zero"), 0), WithTag(Text("one"), 1)}
	rows := UnselectedRows(opts)
	require.Len(t, rows, 2)
	require.False(t, rows[0].Selected)
	require.Equal(t, 1, rows[1].Index)
}

func TestActivateTaggedWritesBeforeDismiss(t *testing.T) {
	sel := binding.New(0)
	var order []string
	sel.Bind(func(v int) { order = append(order, "set") })

	row := BuildRows([]Option[int]{WithTag(Text("seven"), 7)}, sel.Get())[0]
	wrote := Activate[int](row, sel, func() { order = append(order, "dismiss") })

	require.True(t, wrote)
	require.Equal(t, 7, sel.Get())
	require.Equal(t, []string{"set", "dismiss"}, order)
}

// Untagged rows never change the selection but still close the list.
func TestActivateUntaggedStillDismisses(t *testing.T) {
	sel := binding.New(3)
	notified := 0
	sel.Bind(func(int) { notified++ })
	dismissed := 0

	row := BuildRows([]Option[int]{Plain[int](Text("just info"))}, sel.Get())[0]
	wrote := Activate[int](row, sel, func() { dismissed++ })

	require.False(t, wrote)
	require.Equal(t, 3, sel.Get())
	require.Zero(t, notified)
	require.Equal(t, 1, dismissed)
}

func TestActivateToleratesMissingCallbacks(t *testing.T) {
	row := Row[int]{Tag: Tagged(1)}
	require.False(t, Activate[int](row, nil, nil))

	sel := binding.New(0)
	require.True(t, Activate[int](row, sel, nil))
	require.Equal(t, 1, sel.Get())
}

func TestRowSemantics(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true)
	row := Row[int]{
		Content:  ViewFunc(func() string { return styled.Render("Item 1") + "\n\x1b[2mI'm the first item!\x1b[0m" }),
		Tag:      Tagged(1),
		Selected: true,
	}

	sem := row.Semantics()
	require.Equal(t, "Item 1, I'm the first item!", sem.Label)
	require.True(t, sem.Traits.Has(TraitButton))
	require.True(t, sem.Traits.Has(TraitSelected))
	require.NotContains(t, sem.Label, DefaultCheckmark)
	require.Equal(t, "Item 1, I'm the first item! [button,selected]", sem.String())

	row.Selected = false
	require.False(t, row.Semantics().Traits.Has(TraitSelected))
	require.Equal(t, "", Row[int]{}.Semantics().Label)
}

func TestRenderRowCheckmark(t *testing.T) {
	styles := theme.Default()
	row := Row[int]{Content: Text("name\ndescription"), Tag: Tagged(1), Selected: true}

	lines := renderRow(row, false, 30, DefaultCheckmark, styles)
	require.Len(t, lines, 2, "multi-line content keeps its lines")
	require.Contains(t, lines[0], "name")
	require.Contains(t, lines[0], DefaultCheckmark)
	require.NotContains(t, lines[1], DefaultCheckmark)
	require.Contains(t, lines[1], "description")

	row.Selected = false
	for _, line := range renderRow(row, true, 30, DefaultCheckmark, styles) {
		require.NotContains(t, line, DefaultCheckmark)
	}
}

func TestRenderRowTruncatesToWidth(t *testing.T) {
	row := Row[int]{Content: Text(strings.Repeat("w", 50)), Selected: true}
	lines := renderRow(row, false, 20, DefaultCheckmark, theme.Default())
	require.Len(t, lines, 1)
	require.LessOrEqual(t, lipgloss.Width(lines[0]), 20)
	require.Contains(t, lines[0], "…")
	require.Contains(t, lines[0], DefaultCheckmark)
}
