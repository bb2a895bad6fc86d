// Package configcmder provides the config command for managing persistent
// chatshelf configuration stored in the .chatshelf/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent chatshelf configuration.

Configuration is stored as config.toml in the .chatshelf/ directory and
provides default values for command flags. CLI flags always take precedence
over config file values, and CHATSHELF_* environment variables sit between
the two.

Keys use dotted notation matching the TOML section structure:
  claude.dir, codex.dir, scan.workers

Use subcommands to get, set, or list configuration values:
  chatshelf config set <key> <value>    Set a configuration value
  chatshelf config get <key>            Get a configuration value
  chatshelf config list                 List all configuration values

Examples:
  chatshelf config set claude.dir /mnt/backup/.claude
  chatshelf config set scan.workers 8
  chatshelf config get codex.dir
  chatshelf config list`

const configShortDesc string = "Manage persistent chatshelf configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
