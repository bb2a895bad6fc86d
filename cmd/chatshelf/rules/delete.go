package rulescmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/cliui"
)

const deleteLongDesc string = `Delete a rule file.

Removes the named file from the Codex rules directory and drops its entry
from the [rules] global array in config.toml. Other config sections are
left untouched.

Examples:
  chatshelf rules delete style.md`

const deleteShortDesc string = "Delete a rule file"

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: deleteShortDesc,
		Long:  deleteLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0])
		},
	}

	return cmd
}

func runDelete(cmd *cobra.Command, name string) error {
	store, err := setup.Rules(cmd)
	if err != nil {
		return err
	}

	if err := store.Delete(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", cliui.SuccessMark, cliui.KeyStyle.Render(name))

	return nil
}
