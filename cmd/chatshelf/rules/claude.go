package rulescmder

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/cmd/chatshelf/setup"
	"github.com/chatshelf/chatshelf/pkg/cliui"
)

const claudeLongDesc string = `Manage the Claude global rules file.

Claude keeps a single untagged rules file at ~/.claude/CLAUDE.md. The show
subcommand prints it (empty output when the file does not exist) and the
write subcommand replaces it, creating ~/.claude if needed.

Examples:
  chatshelf rules claude show
  chatshelf rules claude write --file ./CLAUDE.md
  cat CLAUDE.md | chatshelf rules claude write`

const claudeShortDesc string = "Manage the Claude CLAUDE.md rules file"

func newClaudeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claude",
		Short: claudeShortDesc,
		Long:  claudeLongDesc,
	}

	cmd.AddCommand(newClaudeShowCmd())
	cmd.AddCommand(newClaudeWriteCmd())

	return cmd
}

func newClaudeShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the Claude rules file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClaudeShow(cmd, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print unrendered markdown")

	return cmd
}

func runClaudeShow(cmd *cobra.Command, raw bool) error {
	store, err := setup.Rules(cmd)
	if err != nil {
		return err
	}

	content, err := store.ReadClaudeRules()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if raw || !cliui.IsTerminal(os.Stdout) {
		fmt.Fprint(out, content)
		return nil
	}

	rendered, err := cliui.RenderMarkdown(content)
	if err != nil {
		fmt.Fprint(out, content)
		return nil
	}

	fmt.Fprint(out, rendered)

	return nil
}

func newClaudeWriteCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the Claude rules file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClaudeWrite(cmd, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read rule content from this file instead of stdin")

	return cmd
}

func runClaudeWrite(cmd *cobra.Command, file string) error {
	var content string

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading rule content from %s: %w", file, err)
		}
		content = string(data)
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading rule content from stdin: %w", err)
		}
		content = string(data)
	}

	store, err := setup.Rules(cmd)
	if err != nil {
		return err
	}

	if err := store.WriteClaudeRules(content); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote CLAUDE.md\n", cliui.SuccessMark)

	return nil
}
