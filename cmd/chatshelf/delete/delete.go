// Package deletecmder provides the `chatshelf delete` CLI command.
package deletecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/cliui"
)

const deleteLongDesc string = `Delete a conversation log.

Removes the .jsonl file at the given path. Directories left empty by the
deletion are cleaned up as well, stopping at the backend roots, so a
project directory that held its last log disappears with it.

Examples:
  chatshelf delete ~/.claude/projects/my-project/4f9d.jsonl`

const deleteShortDesc string = "Delete a conversation log"

// NewDeleteCmd creates the delete cobra command.
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: deleteShortDesc,
		Long:  deleteLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	return cmd
}

func run(cmd *cobra.Command, path string) error {
	log, closeLog, err := setup.Logger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := setup.Catalog(cmd)
	if err != nil {
		return err
	}

	if err := cat.Delete(path); err != nil {
		return err
	}

	log.Debug("deleted conversation log", "path", path)

	fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", cliui.SuccessMark, cliui.ValueStyle.Render(path))

	return nil
}
