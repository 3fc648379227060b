package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/custom-picker/internal/nav"
	"github.com/atomicstack/custom-picker/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerSeparator = "→"
	infoLifetime    = 5 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// InfoMsg asks the model to show a transient message below the screen.
type InfoMsg string

// ErrorMsg reports a failure to the user. It stays visible until the next
// navigation.
type ErrorMsg struct {
	Err error
}

// Model implements the Bubble Tea model hosting a stack of screens.
type Model struct {
	stack       *nav.Stack
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	quitting    bool
	keys        globalKeyMap
	help        help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with root at the bottom of the stack. Positive
// width or height pin that dimension; otherwise it follows the terminal.
func NewModel(root nav.Screen, width, height int, showFooter, verbose bool) *Model {
	h := help.New()
	if styles.Footer != nil {
		h.Styles.ShortKey = styles.Footer.Bold(true)
		h.Styles.ShortDesc = *styles.Footer
		h.Styles.ShortSeparator = *styles.Footer
		h.Styles.FullKey = styles.Footer.Bold(true)
		h.Styles.FullDesc = *styles.Footer
		h.Styles.FullSeparator = *styles.Footer
	}
	m := &Model{
		stack:      nav.NewStack(root),
		showFooter: showFooter,
		verbose:    verbose,
		keys:       defaultGlobalKeys(),
		help:       h,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.forward(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(InfoMsg("")):         m.handleInfoMsg,
		reflect.TypeOf(ErrorMsg{}):          m.handleErrorMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// forward hands msg to the visible screen.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	top := m.stack.Top()
	if top == nil {
		return nil
	}
	return top.Update(msg, m.stack)
}

func (m *Model) handleInfoMsg(msg tea.Msg) tea.Cmd {
	switch info := msg.(type) {
	case InfoMsg:
		m.SetInfo(string(info))
	case *InfoMsg:
		m.SetInfo(string(*info))
	}
	return nil
}

func (m *Model) handleErrorMsg(msg tea.Msg) tea.Cmd {
	var err error
	switch e := msg.(type) {
	case ErrorMsg:
		err = e.Err
	case *ErrorMsg:
		err = e.Err
	}
	m.setError(err)
	return nil
}

// Navigator exposes the screen stack.
func (m *Model) Navigator() nav.Navigator {
	return m.stack
}

// Depth reports how many screens are stacked.
func (m *Model) Depth() int {
	return m.stack.Depth()
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
