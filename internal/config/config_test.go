package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got := Load()
	want := Default()
	if got != want {
		t.Fatalf("Load()=%+v, want defaults %+v", got, want)
	}
	if got.WrapLines || !got.SyntaxHighlight {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := Preferences{WrapLines: true, SyntaxHighlight: false}
	if err := prefs.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(); got != prefs {
		t.Fatalf("Load()=%+v, want %+v", got, prefs)
	}
}

func TestLoadDefaultsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "revlog", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("wrap_lines: [not a bool"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := Load(); got != Default() {
		t.Fatalf("Load()=%+v, want defaults on parse failure", got)
	}
}

func TestLoadPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "revlog", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("wrap_lines: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load()
	if !got.WrapLines {
		t.Fatalf("wrap_lines not loaded: %+v", got)
	}
	if !got.SyntaxHighlight {
		t.Fatalf("missing key lost its default: %+v", got)
	}
}
