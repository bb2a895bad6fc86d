package rulescmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/cliui"
)

const showLongDesc string = `Print a rule file.

Rule files are markdown; when stdout is a terminal the content is rendered
with glamour. Use --raw to print the unrendered markdown.

Examples:
  chatshelf rules show style.md
  chatshelf rules show style.md --raw`

const showShortDesc string = "Print a rule file"

type showCommander struct {
	raw bool
}

func newShowCmd() *cobra.Command {
	cmder := &showCommander{}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: showShortDesc,
		Long:  showLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&cmder.raw, "raw", false, "Print unrendered markdown")

	return cmd
}

func (c *showCommander) run(cmd *cobra.Command, name string) error {
	store, err := setup.Rules(cmd)
	if err != nil {
		return err
	}

	content, err := store.Read(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if c.raw || !cliui.IsTerminal(os.Stdout) {
		fmt.Fprint(out, content)
		return nil
	}

	rendered, err := cliui.RenderMarkdown(content)
	if err != nil {
		// Fall back to raw markdown if the renderer fails.
		fmt.Fprint(out, content)
		return nil
	}

	fmt.Fprint(out, rendered)

	return nil
}
