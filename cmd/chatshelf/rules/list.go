package rulescmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/cliui"
)

const listLongDesc string = `List rule files with their tags.

Reads every .md file under the Codex rules directory and joins each with
its tags from the [rules] global array in config.toml. Files without a
config entry are listed with no tags.

Examples:
  chatshelf rules list`

const listShortDesc string = "List rule files"

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	store, err := setup.Rules(cmd)
	if err != nil {
		return err
	}

	files, err := store.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(files) == 0 {
		fmt.Fprintln(out, cliui.DimStyle.Render("No rule files found."))
		return nil
	}

	// Find the longest name for alignment.
	maxLen := 0
	for _, f := range files {
		if len(f.Name) > maxLen {
			maxLen = len(f.Name)
		}
	}

	for _, f := range files {
		tags := cliui.DimStyle.Render("<no tags>")
		if len(f.Tags) > 0 {
			tags = cliui.ValueStyle.Render(strings.Join(f.Tags, ", "))
		}

		fmt.Fprintf(out, "%s  %s\n",
			cliui.KeyStyle.Render(fmt.Sprintf("%-*s", maxLen, f.Name)),
			tags,
		)
	}

	return nil
}
