// Package view holds the navigation state machine: a closed set of
// three views (commit list, pager, diff) behind one capability
// interface, driven by a router that owns a never-empty view stack.
package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/revlog/internal/config"
	"github.com/kmacinski/revlog/internal/git"
)

// State is the shared application state passed by reference to every
// view call. Views mutate Prefs and read the rest.
type State struct {
	Prefs   *config.Preferences
	Repo    git.Client // nil when repository discovery failed
	Commits []git.Commit
}

// View is one unit of screen content plus its input handling
type View interface {
	Title() string
	Render(width, height int, st *State) string
	OnKey(msg tea.KeyMsg, st *State) Transition
}

// TransitionKind enumerates the navigation outcomes of one key event
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionQuit
	TransitionBack
	TransitionPush
	TransitionReplace
)

// Transition is the single outcome of handling one input event
type Transition struct {
	Kind TransitionKind
	Next View // set for Push and Replace
}

func None() Transition          { return Transition{} }
func Quit() Transition          { return Transition{Kind: TransitionQuit} }
func Back() Transition          { return Transition{Kind: TransitionBack} }
func Push(v View) Transition    { return Transition{Kind: TransitionPush, Next: v} }
func Replace(v View) Transition { return Transition{Kind: TransitionReplace, Next: v} }

// Router owns the view stack. The stack is never empty: popping the
// root is a no-op, so there is always a view to render.
type Router struct {
	stack []View
}

// NewRouter creates a router with the given root view
func NewRouter(root View) *Router {
	return &Router{stack: []View{root}}
}

// Top returns the active view
func (r *Router) Top() View {
	return r.stack[len(r.stack)-1]
}

// Depth returns the current stack size
func (r *Router) Depth() int {
	return len(r.stack)
}

// Render draws only the top-of-stack view
func (r *Router) Render(width, height int, st *State) string {
	return r.Top().Render(width, height, st)
}

// HandleKey delivers the key to the active view and applies its
// transition. It reports whether the application should exit.
func (r *Router) HandleKey(msg tea.KeyMsg, st *State) bool {
	t := r.Top().OnKey(msg, st)
	switch t.Kind {
	case TransitionQuit:
		return true
	case TransitionBack:
		if len(r.stack) > 1 {
			r.stack = r.stack[:len(r.stack)-1]
		}
	case TransitionPush:
		r.stack = append(r.stack, t.Next)
	case TransitionReplace:
		// Pop-then-push: back from the new view returns to whatever was
		// under the old one, never to the old view itself.
		r.stack[len(r.stack)-1] = t.Next
	}
	return false
}
