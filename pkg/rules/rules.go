// Package rules manages tagged Codex rule files and the Claude global rules
// document.
//
// A Codex rule is two independently-mutable records joined only by file
// name: the markdown file under the rules directory, and an entry in the
// [rules] global array of config.toml carrying its tags. The store keeps the
// two in sync on write and delete, tolerates dangling config entries, and
// leaves every unrelated config section intact.
package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chatshelf/chatshelf/pkg/codexcfg"
)

const (
	ruleExt = ".md"

	claudeDirName   = ".claude"
	claudeRulesFile = "CLAUDE.md"
)

// RuleFile is one Codex rule with its config-sourced tags. Tags default to
// empty when the config has no matching entry.
type RuleFile struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// RuleConfig is one persisted [[rules.global]] entry. Path is the join key
// via its file-name component only; the directory prefix may be stale.
type RuleConfig struct {
	Path string   `toml:"path"`
	Tags []string `toml:"tags,omitempty"`
}

// Store reads and mutates the rule files and their config entries.
type Store struct {
	codex     *codexcfg.Accessor
	claudeDir string
}

// Option configures a Store created with NewStore.
type Option func(*Store)

// WithClaudeDir overrides the Claude home directory (default ~/.claude) used
// for the global CLAUDE.md rules document.
func WithClaudeDir(dir string) Option {
	return func(s *Store) {
		s.claudeDir = dir
	}
}

func NewStore(codex *codexcfg.Accessor, opts ...Option) *Store {
	s := &Store{codex: codex}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List enumerates the rule files directly under the rules directory and
// joins each to its config entry by file name. A missing rules directory is
// an empty store; a broken config just means every rule lists without tags.
func (s *Store) List() ([]RuleFile, error) {
	dir := s.codex.RulesDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading rules directory %s: %w", dir, err)
	}

	var files []RuleFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ruleExt {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading rule file %s: %w", entry.Name(), err)
		}

		files = append(files, RuleFile{
			Name:    entry.Name(),
			Path:    path,
			Tags:    []string{},
			Content: string(content),
		})
	}

	if configured, err := s.RuleConfig(); err == nil {
		for i := range files {
			for _, rc := range configured {
				if filepath.Base(rc.Path) == files[i].Name {
					if len(rc.Tags) > 0 {
						files[i].Tags = rc.Tags
					}
					break
				}
			}
		}
	}

	return files, nil
}

// Read returns the content of one rule file.
func (s *Store) Read(name string) (string, error) {
	path := filepath.Join(s.codex.RulesDir(), name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound{Name: name}
		}
		return "", fmt.Errorf("reading rule file %s: %w", name, err)
	}

	return string(data), nil
}

// Write stores a rule file and upserts its config entry. The config entry
// records the file's absolute path and, only when non-empty, its tags.
func (s *Store) Write(name, content string, tags []string) error {
	dir := s.codex.RulesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating rules directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing rule file %s: %w", name, err)
	}

	return s.upsertConfigEntry(path, tags)
}

// Delete removes a rule file and drops its config entry when one exists. A
// missing config section or entry is not an error; a missing file is.
func (s *Store) Delete(name string) error {
	path := filepath.Join(s.codex.RulesDir(), name)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound{Name: name}
		}
		return fmt.Errorf("reading metadata for %s: %w", path, err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting rule file %s: %w", name, err)
	}

	return s.removeConfigEntry(name)
}
