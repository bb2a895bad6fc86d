// Package listcmder provides the `chatshelf list` CLI command.
package listcmder

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/catalog"
	"github.com/chatshelf/chatshelf/pkg/cliui"
	"github.com/chatshelf/chatshelf/pkg/utils"
)

const listLongDesc string = `List conversation logs from the Claude and Codex trees.

Scans ~/.claude/projects and ~/.codex/sessions (or their configured
overrides) for .jsonl conversation logs, newest first. Use --backend to
restrict the listing to one tree.

Examples:
  chatshelf list
  chatshelf list --backend claude
  chatshelf list -b codex --json`

const listShortDesc string = "List conversation logs"

type listCommander struct {
	backend  string
	asJSON   bool
	showPath bool
}

// NewListCmd creates the list cobra command.
func NewListCmd() *cobra.Command {
	cmder := &listCommander{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.backend, "backend", "b", "", "Restrict to one backend (claude or codex)")
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Emit the listing as JSON")
	cmd.Flags().BoolVarP(&cmder.showPath, "paths", "p", false, "Show full file paths instead of ids")

	return cmd
}

func (c *listCommander) run(cmd *cobra.Command) error {
	log, closeLog, err := setup.Logger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := setup.Catalog(cmd)
	if err != nil {
		return err
	}

	metas, err := collect(cat, c.backend)
	if err != nil {
		return err
	}

	log.Debug("listed conversation logs", "count", len(metas), "backend", c.backend)

	if c.asJSON {
		return writeJSON(cmd, metas)
	}

	return c.render(cmd, metas)
}

// collect gathers logs for the requested backend, or both trees when no
// backend filter is given.
func collect(cat *catalog.Catalog, backend string) ([]catalog.ConversationMeta, error) {
	switch catalog.Backend(backend) {
	case catalog.BackendClaude, catalog.BackendCodex:
		return cat.List(catalog.Backend(backend))
	}

	claude, err := cat.List(catalog.BackendClaude)
	if err != nil {
		return nil, err
	}

	codex, err := cat.List(catalog.BackendCodex)
	if err != nil {
		return nil, err
	}

	return append(claude, codex...), nil
}

func (c *listCommander) render(cmd *cobra.Command, metas []catalog.ConversationMeta) error {
	out := cmd.OutOrStdout()

	if len(metas) == 0 {
		fmt.Fprintln(out, cliui.DimStyle.Render("No conversation logs found."))
		return nil
	}

	for _, m := range metas {
		name := utils.Truncate(m.ID, 36)
		if c.showPath {
			name = m.FilePath
		}

		container := m.ContainerName
		if container == "" {
			container = "-"
		}

		fmt.Fprintf(out, "%s  %s  %s  %s  %s\n",
			cliui.DimStyle.Render(time.Unix(m.ModifiedAt, 0).Format("2006-01-02 15:04")),
			cliui.KeyStyle.Render(fmt.Sprintf("%-6s", string(m.Backend))),
			cliui.ValueStyle.Render(name),
			cliui.DimStyle.Render(utils.Truncate(container, 32)),
			cliui.DimStyle.Render(fmt.Sprintf("%d entries", m.EntryCount)),
		)
	}

	fmt.Fprintf(out, "\n%s\n", cliui.DimStyle.Render(fmt.Sprintf("%d conversation logs", len(metas))))

	return nil
}
