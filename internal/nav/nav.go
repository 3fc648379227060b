// Package nav holds the screen stack that backs push/pop navigation.
package nav

import (
	"github.com/atomicstack/custom-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Reason records why a screen left the stack.
type Reason string

const (
	// ReasonBack is a caller-initiated back navigation (esc).
	ReasonBack Reason = "back"
	// ReasonDismiss is a screen asking to be closed, e.g. after a choice.
	ReasonDismiss Reason = "dismiss"
)

// Screen is one frame on the navigation stack.
type Screen interface {
	ID() string
	Title() string
	Update(msg tea.Msg, n Navigator) tea.Cmd
	View(width, height int) string
}

// Closer is implemented by screens that need to know when they are popped.
type Closer interface {
	Closed(reason Reason)
}

// Navigator is the push/pop surface handed to screens.
type Navigator interface {
	Push(s Screen)
	Pop(reason Reason) bool
	Depth() int
	Top() Screen
}

// Stack is a Navigator backed by a slice. The bottom entry is never popped.
type Stack struct {
	screens []Screen
}

// NewStack returns a stack with root at the bottom.
func NewStack(root Screen) *Stack {
	s := &Stack{}
	if root != nil {
		s.screens = []Screen{root}
	}
	return s
}

// Push places screen on top of the stack.
func (s *Stack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.screens = append(s.screens, screen)
	events.Nav.Push(screen.ID(), len(s.screens))
}

// Pop removes the top screen unless it is the root. The popped screen is
// told why it was closed.
func (s *Stack) Pop(reason Reason) bool {
	if len(s.screens) <= 1 {
		return false
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	events.Nav.Pop(top.ID(), string(reason), len(s.screens))
	if closer, ok := top.(Closer); ok {
		closer.Closed(reason)
	}
	return true
}

// Depth reports the number of screens on the stack.
func (s *Stack) Depth() int {
	return len(s.screens)
}

// Top returns the visible screen, or nil for an empty stack.
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Titles lists screen titles from the root up.
func (s *Stack) Titles() []string {
	titles := make([]string, 0, len(s.screens))
	for _, screen := range s.screens {
		titles = append(titles, screen.Title())
	}
	return titles
}
