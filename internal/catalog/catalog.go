// Package catalog supplies the records offered by the demo picker.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one selectable record.
type Item struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

func (i Item) String() string {
	return i.Name
}

type file struct {
	Items []Item `yaml:"items"`
}

var defaults = []Item{
	{Name: "Item 1", Description: "I'm the first item!"},
	{Name: "Item 2", Description: "I'm the middle item!"},
	{Name: "Item 3", Description: "I'm the last item!"},
}

// Defaults returns a copy of the built-in records.
func Defaults() []Item {
	out := make([]Item, len(defaults))
	copy(out, defaults)
	return out
}

// Load reads records from a YAML file of the form
//
//	items:
//	  - name: Item 1
//	    description: I'm the first item!
//
// An empty path returns the defaults.
func Load(path string) ([]Item, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML records. Names are trimmed and must be present.
func Parse(data []byte) ([]Item, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items file: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, errors.New("items file lists no items")
	}
	out := make([]Item, len(f.Items))
	for i, it := range f.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("item %d has no name", i+1)
		}
		out[i] = Item{Name: name, Description: strings.TrimSpace(it.Description)}
	}
	return out, nil
}
