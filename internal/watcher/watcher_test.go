package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnceAfterBurst(t *testing.T) {
	dir := t.TempDir()
	fired := make(chan struct{}, 8)

	w, err := New(dir, 50*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()
	w.Start()

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "ref")
		if err := os.WriteFile(name, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never fired")
	}

	// The burst was inside one debounce window: no second callback.
	select {
	case <-fired:
		t.Fatal("debounce did not collapse the event burst")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherBadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {}); err == nil {
		t.Fatal("want error for missing path")
	}
}
