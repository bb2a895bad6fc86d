// Package showcmder provides the `chatshelf show` CLI command.
package showcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
)

const showLongDesc string = `Print the raw contents of a conversation log.

The path argument is the full file path of the .jsonl log, as printed by
list --paths or search.

Examples:
  chatshelf show ~/.claude/projects/my-project/4f9d.jsonl
  chatshelf show ~/.codex/sessions/2026/08/14/rollout-abc.jsonl | jq .`

const showShortDesc string = "Print a conversation log"

// NewShowCmd creates the show cobra command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: showShortDesc,
		Long:  showLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	return cmd
}

func run(cmd *cobra.Command, path string) error {
	cat, err := setup.Catalog(cmd)
	if err != nil {
		return err
	}

	content, err := cat.Content(path)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), content)

	return nil
}
