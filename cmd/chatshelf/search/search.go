// Package searchcmder provides the `chatshelf search` CLI command.
package searchcmder

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/catalog"
	"github.com/chatshelf/chatshelf/pkg/cliui"
	"github.com/chatshelf/chatshelf/pkg/utils"
)

const searchLongDesc string = `Search conversation logs by keyword.

Matches the keyword case-insensitively against each log's id, project
container name, and embedded session id. An empty keyword matches
everything. Use --backend to restrict the search to one tree; without it
Claude results come first, then Codex.

Examples:
  chatshelf search my-project
  chatshelf search 4f9d --backend codex`

const searchShortDesc string = "Search conversation logs by keyword"

type searchCommander struct {
	backend string
}

// NewSearchCmd creates the search cobra command.
func NewSearchCmd() *cobra.Command {
	cmder := &searchCommander{}

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: searchShortDesc,
		Long:  searchLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&cmder.backend, "backend", "b", "", "Restrict to one backend (claude or codex)")

	return cmd
}

func (c *searchCommander) run(cmd *cobra.Command, keyword string) error {
	log, closeLog, err := setup.Logger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := setup.Catalog(cmd)
	if err != nil {
		return err
	}

	metas, err := cat.Search(catalog.Backend(c.backend), keyword)
	if err != nil {
		return err
	}

	log.Debug("searched conversation logs", "keyword", keyword, "hits", len(metas))

	out := cmd.OutOrStdout()

	if len(metas) == 0 {
		fmt.Fprintln(out, cliui.DimStyle.Render(fmt.Sprintf("No conversation logs match %q.", keyword)))
		return nil
	}

	for _, m := range metas {
		fmt.Fprintf(out, "%s  %s  %s\n",
			cliui.DimStyle.Render(time.Unix(m.ModifiedAt, 0).Format("2006-01-02 15:04")),
			cliui.KeyStyle.Render(fmt.Sprintf("%-6s", string(m.Backend))),
			cliui.ValueStyle.Render(utils.Truncate(m.FilePath, 96)),
		)
	}

	fmt.Fprintf(out, "\n%s\n", cliui.DimStyle.Render(fmt.Sprintf("%d matches", len(metas))))

	return nil
}
