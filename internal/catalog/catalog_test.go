package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	items := Defaults()
	require.Equal(t, []Item{
		{Name: "Item 1", Description: "I'm the first item!"},
		{Name: "Item 2", Description: "I'm the middle item!"},
		{Name: "Item 3", Description: "I'm the last item!"},
	}, items)

	items[0].Name = "changed"
	require.Equal(t, "Item 1", Defaults()[0].Name)
	require.Equal(t, "Item 2", Defaults()[1].String())
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	items, err := Load("  ")
	require.NoError(t, err)
	require.Equal(t, Defaults(), items)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	data := []byte("items:\n  - name: \" Apple \"\n    description: red\n  - name: Pear\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	items, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []Item{{Name: "Apple", Description: "red"}, {Name: "Pear"}}, items)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read items file")

	_, err = Parse([]byte("items: [\n"))
	require.ErrorContains(t, err, "failed to parse items file")

	_, err = Parse([]byte("items: []\n"))
	require.ErrorContains(t, err, "no items")

	_, err = Parse([]byte("items:\n  - name: ok\n  - description: nameless\n"))
	require.ErrorContains(t, err, "item 2 has no name")
}
