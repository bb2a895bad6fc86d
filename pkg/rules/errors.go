package rules

import "fmt"

// ErrNotFound is returned when a named rule file does not exist.
type ErrNotFound struct {
	Name string
}

func (e ErrNotFound) Error() string {
	if e.Name == "" {
		return "rule file not found"
	}

	return "rule file not found: " + e.Name
}

// ConfigError reports a config.toml parse or serialize failure during a rule
// mutation. Mutations fail loudly rather than risk silently dropping tag
// data or unrelated config sections.
type ConfigError struct {
	Path string
	Err  error
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("codex config %s: %v", e.Path, e.Err)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}
