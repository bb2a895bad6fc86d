package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Claude keeps a single global rules document rather than a tagged rule
// directory, so these operate on one file with no config side channel.

// ClaudeRulesPath returns the CLAUDE.md location for the configured Claude
// home directory.
func (s *Store) ClaudeRulesPath() (string, error) {
	if s.claudeDir != "" {
		abs, err := filepath.Abs(filepath.Join(s.claudeDir, claudeRulesFile))
		if err != nil {
			return "", fmt.Errorf("resolving claude directory: %w", err)
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, claudeDirName, claudeRulesFile), nil
}

// ReadClaudeRules returns the Claude global rules document, or an empty
// string when none has been written yet.
func (s *Store) ReadClaudeRules() (string, error) {
	path, err := s.ClaudeRulesPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return string(data), nil
}

// WriteClaudeRules replaces the Claude global rules document, creating the
// Claude home directory if needed.
func (s *Store) WriteClaudeRules(content string) error {
	path, err := s.ClaudeRulesPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating claude directory %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
