// Package ui contains the Bubble Tea program that hosts the picker screens.
// Model owns a nav.Stack and focuses on message orchestration; screens own
// their own rows and key handling.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - A typed handler registry picks up key presses, resizes and the
//     InfoMsg/ErrorMsg notifications. Global keys (ctrl+c, esc, ?) are handled
//     here; every other key is forwarded to the screen on top of the stack
//     together with the stack itself, so screens can push and pop.
//
// Rendering:
//   - The header is the breadcrumb of screen titles joined with an arrow.
//   - The body is the top screen's View, sized to whatever the header,
//     info line and footer leave free.
//   - The optional footer is rendered by bubbles/help from the top screen's
//     key bindings plus the global ones.
package ui
