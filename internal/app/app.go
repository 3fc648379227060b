package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/custom-picker/internal/catalog"
	"github.com/atomicstack/custom-picker/internal/demo"
	"github.com/atomicstack/custom-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	ItemsFile  string
	Title      string
}

// NewModel loads the catalog and builds the root model around the demo form.
// The returned cleanup releases the form's observer.
func NewModel(cfg Config) (*ui.Model, func(), error) {
	items, err := catalog.Load(cfg.ItemsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load items: %w", err)
	}
	var model *ui.Model
	form := demo.NewForm(cfg.Title, items, func(msg string) {
		if model != nil {
			model.SetInfo(msg)
		}
	})
	model = ui.NewModel(form, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	return model, form.Close, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
