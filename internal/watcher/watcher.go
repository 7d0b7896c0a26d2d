// Package watcher notices repository changes on disk so the commit
// list can refresh without a manual reload.
package watcher

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// GitWatcher watches a repository's .git directory and invokes the
// callback once events have settled for the debounce interval. Git
// writes many files per operation; debouncing collapses the burst into
// one refresh.
type GitWatcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange func()
	done     chan struct{}
}

// New creates a watcher on path. The callback runs on the watcher
// goroutine; callers that need loop affinity should forward a message.
func New(path string, debounce time.Duration, onChange func()) (*GitWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(path); err != nil {
		fs.Close()
		return nil, err
	}
	return &GitWatcher{
		fs:       fs,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in the background
func (w *GitWatcher) Start() {
	go w.loop()
}

// Stop shuts the watcher down
func (w *GitWatcher) Stop() {
	close(w.done)
	w.fs.Close()
}

func (w *GitWatcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			w.onChange()

		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}
