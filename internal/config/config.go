// Package config persists the two user preferences across runs. A
// missing or unreadable config file is never an error: the UI must come
// up with defaults no matter what is on disk.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences holds the user-toggleable view settings
type Preferences struct {
	WrapLines       bool `yaml:"wrap_lines"`
	SyntaxHighlight bool `yaml:"syntax_highlight"`
}

// Default returns the out-of-the-box preferences
func Default() Preferences {
	return Preferences{
		WrapLines:       false,
		SyntaxHighlight: true,
	}
}

// Load reads preferences from the config file, falling back silently to
// defaults when the file is missing or malformed.
func Load() Preferences {
	prefs := Default()

	path, err := configPath()
	if err != nil {
		return prefs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return prefs
	}
	return loaded
}

// Save writes preferences to the config file, creating the directory if
// needed. Callers treat failures as best-effort; the in-memory state is
// authoritative for the session.
func (p Preferences) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "revlog", "config.yml"), nil
}
