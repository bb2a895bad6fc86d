package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag names shared across commands. Each maps to a dotted viper key so
// that CLI flags participate in the precedence chain.
const (
	FlagClaudeDir   = "claude-dir"
	FlagCodexDir    = "codex-dir"
	FlagScanWorkers = "scan-workers"
)

// Flag describes a CLI flag and the viper key it binds to.
type Flag struct {
	Name     string
	ViperKey string
	Usage    string
}

// FlagSet is a registry of flags that bind to viper keys.
type FlagSet []Flag

// RootFlags are the persistent flags registered on the root command.
var RootFlags = FlagSet{
	{Name: FlagClaudeDir, ViperKey: "claude.dir", Usage: "override the Claude data directory (default ~/.claude)"},
	{Name: FlagCodexDir, ViperKey: "codex.dir", Usage: "override the Codex data directory (default ~/.codex)"},
	{Name: FlagScanWorkers, ViperKey: "scan.workers", Usage: "number of concurrent directory scan workers"},
}

// Lookup returns the flag with the given name, if registered.
func (fs FlagSet) Lookup(name string) (Flag, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}

	return Flag{}, false
}

// AddStringFlag registers a persistent string flag on cmd for the named
// registry entry.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, name, def string) error {
	f, ok := fs.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown flag %q", name)
	}

	cmd.PersistentFlags().String(f.Name, def, f.Usage)

	return nil
}

// AddUintFlag registers a persistent uint flag on cmd for the named
// registry entry.
func AddUintFlag(cmd *cobra.Command, fs FlagSet, name string, def uint) error {
	f, ok := fs.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown flag %q", name)
	}

	cmd.PersistentFlags().Uint(f.Name, def, f.Usage)

	return nil
}

// BindRegisteredFlags binds every registered flag present on cmd to its
// viper key. Flags the user did not set fall through to env vars, config
// file values, then defaults.
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet) error {
	for _, f := range fs {
		pf := cmd.PersistentFlags().Lookup(f.Name)
		if pf == nil {
			pf = cmd.Flags().Lookup(f.Name)
		}

		if pf == nil {
			continue
		}

		if err := v.BindPFlag(f.ViperKey, pf); err != nil {
			return fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	}

	return nil
}

// Runtime holds the resolved settings a command needs after the full
// precedence chain (flags > env > config file > defaults) is applied.
type Runtime struct {
	ClaudeDir   string
	CodexDir    string
	ScanWorkers uint
}

// ResolveRuntime builds the effective runtime settings for cmd. The
// --config-dir persistent flag picks the config directory; registered
// root flags are bound before values are read.
func ResolveRuntime(cmd *cobra.Command) (*Runtime, error) {
	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		configDir = ""
	}

	v, err := InitViper(configDir)
	if err != nil {
		return nil, err
	}

	if err := BindRegisteredFlags(v, cmd.Root(), RootFlags); err != nil {
		return nil, err
	}

	return &Runtime{
		ClaudeDir:   v.GetString("claude.dir"),
		CodexDir:    v.GetString("codex.dir"),
		ScanWorkers: v.GetUint("scan.workers"),
	}, nil
}
