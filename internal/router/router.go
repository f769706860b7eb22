// Package router owns the TUI screen stack. Screens never touch the stack;
// they return one of the navigation commands and the app feeds the
// resulting message back through Update.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerprep/internal/screen"
)

type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the current screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the current screen for Screen, so Back skips it.
	ReplaceScreenMsg struct{ Screen screen.Screen }

	// HomeMsg closes every screen above the root.
	HomeMsg struct{}
)

// Push returns a command that opens s.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back returns a command that closes the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Replace returns a command that swaps the current screen for s.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Home returns a command that returns to the root screen.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Router is a stack of screens. The root is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a Router rooted at root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens, root included.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail returns the titles of the open screens from the root up.
func (r *Router) Trail() []string {
	titles := make([]string, len(r.stack))
	for i, s := range r.stack {
		titles[i] = s.Title()
	}
	return titles
}

// Update applies navigation messages and forwards everything else to the
// active screen. Newly shown screens get their Init command run.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case ReplaceScreenMsg:
		r.stack[len(r.stack)-1] = msg.Screen
		return msg.Screen.Init()
	case PopScreenMsg:
		if len(r.stack) > 1 {
			r.stack = r.stack[:len(r.stack)-1]
		}
		return nil
	case HomeMsg:
		r.stack = r.stack[:1]
		return nil
	}

	top := len(r.stack) - 1
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
