package demo

import (
	"github.com/atomicstack/custom-picker/internal/catalog"
	"github.com/atomicstack/custom-picker/internal/theme"
)

// ItemView renders a record as its name with the description dimmed below.
type ItemView struct {
	Item   catalog.Item
	Styles *theme.Styles
}

func (v ItemView) View() string {
	styles := v.Styles
	if styles == nil {
		styles = theme.Default()
	}
	if v.Item.Description == "" {
		return v.Item.Name
	}
	return v.Item.Name + "\n" + theme.Render(styles.Caption, v.Item.Description)
}
