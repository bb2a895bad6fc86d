package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent chatshelf configuration stored as
// config.toml in the .chatshelf/ directory. The TOML layout uses sections
// for logical grouping.
type Config struct {
	Version int          `toml:"version"`
	Claude  ClaudeConfig `toml:"claude"`
	Codex   CodexConfig  `toml:"codex"`
	Scan    ScanConfig   `toml:"scan"`
}

// ClaudeConfig holds the Claude home directory override. An empty Dir means
// the default ~/.claude.
type ClaudeConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// CodexConfig holds the Codex home directory override. An empty Dir means
// the default ~/.codex.
type CodexConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// ScanConfig holds catalog scan settings.
type ScanConfig struct {
	Workers uint `toml:"workers,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"claude.dir": {
		get: func(c *Config) string { return c.Claude.Dir },
		set: func(c *Config, v string) error { c.Claude.Dir = v; return nil },
	},
	"codex.dir": {
		get: func(c *Config) string { return c.Codex.Dir },
		set: func(c *Config, v string) error { c.Codex.Dir = v; return nil },
	},
	"scan.workers": {
		get: func(c *Config) string {
			if c.Scan.Workers == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.Scan.Workers), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for scan.workers: %w", err)
			}
			c.Scan.Workers = uint(n)
			return nil
		},
	},
}
