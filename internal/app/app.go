// Package app connects the view router to the bubbletea event loop.
// All data is loaded synchronously on the input-handling goroutine:
// one key event is fully processed, including any diff fetch and
// highlighting, before the next render.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/revlog/internal/config"
	"github.com/kmacinski/revlog/internal/git"
	"github.com/kmacinski/revlog/internal/ui"
	"github.com/kmacinski/revlog/internal/view"
	"github.com/kmacinski/revlog/internal/watcher"
)

// App is the main application model
type App struct {
	state  *view.State
	router *view.Router

	limit     int
	watchPath string

	width  int
	height int

	watcher *watcher.GitWatcher
	program *tea.Program
}

// New creates the application. repo may be nil when discovery failed;
// the list then renders empty and Enter is a no-op. watchPath is the
// .git directory to watch for refreshes, or empty to disable watching.
func New(prefs *config.Preferences, repo git.Client, commits []git.Commit, limit int, watchPath string) *App {
	styles := ui.DefaultStyles
	state := &view.State{
		Prefs:   prefs,
		Commits: commits,
	}
	if repo != nil {
		state.Repo = repo
	}
	return &App{
		state:     state,
		router:    view.NewRouter(view.NewList(styles)),
		limit:     limit,
		watchPath: watchPath,
	}
}

// SetProgram wires the tea.Program so the watcher can inject messages
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.watchPath == "" {
		return
	}

	w, err := watcher.New(a.watchPath, 500*time.Millisecond, func() {
		if a.program != nil {
			a.program.Send(RepoChangedMsg{})
		}
	})
	if err == nil {
		a.watcher = w
		a.watcher.Start()
	}
}

// Cleanup stops the watcher
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// Init initializes the application; all data was loaded up front
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.router.HandleKey(msg, a.state) {
			return a, tea.Quit
		}
		return a, nil

	case RepoChangedMsg:
		a.reloadCommits()
		return a, nil
	}

	return a, nil
}

// reloadCommits refreshes the list after the repository changed on
// disk. Failures keep the previous list; the UI never breaks on a
// half-written repo state.
func (a *App) reloadCommits() {
	if a.state.Repo == nil {
		return
	}
	commits, err := a.state.Repo.RecentCommits(a.limit)
	if err != nil {
		return
	}
	a.state.Commits = commits
}

// View renders the active view
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	return a.router.Render(a.width, a.height, a.state)
}
