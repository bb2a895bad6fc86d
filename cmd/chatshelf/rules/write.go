package rulescmder

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/cliui"
)

const writeLongDesc string = `Write a rule file.

Creates or replaces the named rule file under the Codex rules directory
and records its path and tags in the [rules] global array of config.toml.
Rewriting an existing rule keeps its position in the array. Content is
read from --file, or from stdin when no file is given.

Examples:
  chatshelf rules write style.md --file ./style.md --tag go --tag testing
  cat style.md | chatshelf rules write style.md`

const writeShortDesc string = "Write a rule file"

type writeCommander struct {
	file string
	tags []string
}

func newWriteCmd() *cobra.Command {
	cmder := &writeCommander{}

	cmd := &cobra.Command{
		Use:   "write <name>",
		Short: writeShortDesc,
		Long:  writeLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&cmder.file, "file", "f", "", "Read rule content from this file instead of stdin")
	cmd.Flags().StringArrayVarP(&cmder.tags, "tag", "t", nil, "Tag the rule (repeatable)")

	return cmd
}

func (c *writeCommander) run(cmd *cobra.Command, name string) error {
	content, err := c.readContent(cmd)
	if err != nil {
		return err
	}

	store, err := setup.Rules(cmd)
	if err != nil {
		return err
	}

	if err := store.Write(name, content, c.tags); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", cliui.SuccessMark, cliui.KeyStyle.Render(name))

	return nil
}

func (c *writeCommander) readContent(cmd *cobra.Command) (string, error) {
	if c.file != "" {
		data, err := os.ReadFile(c.file)
		if err != nil {
			return "", fmt.Errorf("reading rule content from %s: %w", c.file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading rule content from stdin: %w", err)
	}

	return string(data), nil
}
