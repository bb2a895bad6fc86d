// Package rulescmder provides the rules command group for managing global
// rule files stored under ~/.codex/rules and the Claude CLAUDE.md file.
package rulescmder

import (
	"github.com/spf13/cobra"
)

const rulesLongDesc string = `Manage global rule files.

Rule files are markdown documents stored under ~/.codex/rules. Each file
may carry tags, recorded in the [rules] global array of the Codex
config.toml alongside the file path. Chatshelf keeps that array in sync as
rules are written and deleted, and never touches unrelated config sections.

The claude subcommand manages the single ~/.claude/CLAUDE.md rules file,
which has no tags.

Use subcommands to work with rule files:
  chatshelf rules list                List rule files with their tags
  chatshelf rules show <name>         Print a rule file
  chatshelf rules write <name>        Write a rule file (stdin or --file)
  chatshelf rules delete <name>       Delete a rule file
  chatshelf rules claude show         Print the Claude rules file
  chatshelf rules claude write        Write the Claude rules file

Examples:
  chatshelf rules write style.md --file style.md --tag go --tag testing
  chatshelf rules list
  chatshelf rules delete style.md`

const rulesShortDesc string = "Manage global rule files"

func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: rulesShortDesc,
		Long:  rulesLongDesc,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newWriteCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newClaudeCmd())

	return cmd
}
