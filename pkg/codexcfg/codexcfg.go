// Package codexcfg provides access to the Codex home directory: its rules
// directory and the raw text of its config.toml. Callers treat the config
// text as an opaque document they parse, mutate, and fully rewrite.
package codexcfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirName      = ".codex"
	configFile   = "config.toml"
	rulesDirName = "rules"
)

// Accessor resolves paths inside one Codex home directory.
type Accessor struct {
	dir string
}

// NewAccessor resolves the Codex home directory. An override replaces the
// default ~/.codex.
func NewAccessor(override string) (*Accessor, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return nil, fmt.Errorf("resolving codex directory: %w", err)
		}
		return &Accessor{dir: abs}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &Accessor{dir: filepath.Join(home, dirName)}, nil
}

// Dir returns the Codex home directory.
func (a *Accessor) Dir() string {
	return a.dir
}

// ConfigPath returns the location of config.toml, whether or not it exists.
func (a *Accessor) ConfigPath() string {
	return filepath.Join(a.dir, configFile)
}

// RulesDir returns the directory holding the global rule files.
func (a *Accessor) RulesDir() string {
	return filepath.Join(a.dir, rulesDirName)
}

// ReadConfigText returns the raw config.toml contents, or an empty string
// when the file does not exist yet.
func (a *Accessor) ReadConfigText() (string, error) {
	data, err := os.ReadFile(a.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", a.ConfigPath(), err)
	}
	return string(data), nil
}

// WriteConfigText replaces config.toml wholesale, creating the Codex home
// directory if needed.
func (a *Accessor) WriteConfigText(text string) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("creating codex directory %s: %w", a.dir, err)
	}

	if err := os.WriteFile(a.ConfigPath(), []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", a.ConfigPath(), err)
	}

	return nil
}
