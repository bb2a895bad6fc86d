package rules

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// The config.toml document is decoded into generic tables rather than a
// typed struct so every section besides [rules] survives the
// read-modify-write cycle untouched.

// RuleConfig returns the persisted [[rules.global]] entries. An absent or
// blank config yields no entries; a config without the rules section or the
// global array is an error (callers that can tolerate it, like List, do).
func (s *Store) RuleConfig() ([]RuleConfig, error) {
	text, err := s.codex.ReadConfigText()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := s.parseDocument(text)
	if err != nil {
		return nil, err
	}

	rulesTable, ok := doc["rules"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s has no [rules] section", s.codex.ConfigPath())
	}
	global, err := entryTables(rulesTable["global"])
	if err != nil || global == nil {
		return nil, fmt.Errorf("%s has no rules.global array", s.codex.ConfigPath())
	}

	configured := make([]RuleConfig, 0, len(global))
	for _, entry := range global {
		path, ok := entry["path"].(string)
		if !ok {
			return nil, fmt.Errorf("%s: rules.global entry is missing a path", s.codex.ConfigPath())
		}
		configured = append(configured, RuleConfig{
			Path: path,
			Tags: stringSlice(entry["tags"]),
		})
	}

	return configured, nil
}

// upsertConfigEntry records a rule file in rules.global. An existing entry
// with the same file name is replaced in place so hand-ordered configs keep
// their ordering; otherwise the entry is appended. The tags key is omitted
// entirely when empty, which keeps hand-edited configs round-trip stable.
func (s *Store) upsertConfigEntry(rulePath string, tags []string) error {
	text, err := s.codex.ReadConfigText()
	if err != nil {
		return err
	}

	doc := map[string]any{}
	if strings.TrimSpace(text) != "" {
		if doc, err = s.parseDocument(text); err != nil {
			return err
		}
	}

	rulesTable, ok := doc["rules"].(map[string]any)
	if doc["rules"] != nil && !ok {
		return ConfigError{Path: s.codex.ConfigPath(), Err: fmt.Errorf("rules is not a table")}
	}
	if rulesTable == nil {
		rulesTable = map[string]any{}
	}

	global, err := entryTables(rulesTable["global"])
	if err != nil {
		return ConfigError{Path: s.codex.ConfigPath(), Err: err}
	}

	entry := map[string]any{"path": rulePath}
	if len(tags) > 0 {
		entry["tags"] = tags
	}

	name := filepath.Base(rulePath)
	replaced := false
	for i, existing := range global {
		if entryFileName(existing) == name {
			global[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		global = append(global, entry)
	}

	rulesTable["global"] = global
	doc["rules"] = rulesTable

	return s.saveDocument(doc)
}

// removeConfigEntry drops the rules.global entry whose path's file name
// matches. Entries without a usable path are kept, and a config with no
// rules section is left alone.
func (s *Store) removeConfigEntry(name string) error {
	text, err := s.codex.ReadConfigText()
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := s.parseDocument(text)
	if err != nil {
		return err
	}

	if rulesTable, ok := doc["rules"].(map[string]any); ok {
		if global, err := entryTables(rulesTable["global"]); err == nil && global != nil {
			kept := make([]map[string]any, 0, len(global))
			for _, entry := range global {
				if fileName := entryFileName(entry); fileName != "" && fileName == name {
					continue
				}
				kept = append(kept, entry)
			}
			rulesTable["global"] = kept
		}
	}

	return s.saveDocument(doc)
}

func (s *Store) parseDocument(text string) (map[string]any, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, ConfigError{Path: s.codex.ConfigPath(), Err: err}
	}
	return doc, nil
}

func (s *Store) saveDocument(doc map[string]any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return ConfigError{Path: s.codex.ConfigPath(), Err: err}
	}
	return s.codex.WriteConfigText(buf.String())
}

// entryTables normalizes a decoded TOML array-of-tables value. A nil value
// yields nil; a value of any other shape is an error.
func entryTables(v any) ([]map[string]any, error) {
	switch arr := v.(type) {
	case nil:
		return nil, nil
	case []map[string]any:
		return arr, nil
	case []any:
		tables := make([]map[string]any, 0, len(arr))
		for _, item := range arr {
			table, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("rules.global holds a non-table entry")
			}
			tables = append(tables, table)
		}
		return tables, nil
	default:
		return nil, fmt.Errorf("rules.global is not an array")
	}
}

// entryFileName extracts the file-name component of an entry's path, the
// only part of it that participates in matching.
func entryFileName(entry map[string]any) string {
	path, ok := entry["path"].(string)
	if !ok || path == "" {
		return ""
	}
	return filepath.Base(path)
}

func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
