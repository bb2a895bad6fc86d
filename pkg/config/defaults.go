package config

const defaultScanWorkers = 4

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values. Directory
// overrides default to empty, meaning the home-relative ~/.claude and
// ~/.codex locations.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Scan: ScanConfig{
			Workers: defaultScanWorkers,
		},
	}
}
