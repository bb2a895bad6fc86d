// Package shelfcmder
package shelfcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/chatshelf/chatshelf/cmd/chatshelf/config"
	deletecmder "github.com/chatshelf/chatshelf/cmd/chatshelf/delete"
	listcmder "github.com/chatshelf/chatshelf/cmd/chatshelf/list"
	rulescmder "github.com/chatshelf/chatshelf/cmd/chatshelf/rules"
	searchcmder "github.com/chatshelf/chatshelf/cmd/chatshelf/search"
	showcmder "github.com/chatshelf/chatshelf/cmd/chatshelf/show"
	versioncmder "github.com/chatshelf/chatshelf/cmd/version"
	"github.com/chatshelf/chatshelf/pkg/config"
)

const shelfLongDesc string = `Chatshelf catalogs the conversation logs your coding agents leave behind.

It reads the Claude Code (~/.claude/projects) and Codex (~/.codex/sessions)
log trees in place -- listing, searching, showing, and deleting conversation
logs without ever owning the directories itself. It also manages tagged
global rule files under ~/.codex/rules and the Claude CLAUDE.md rules file.

Browse conversations using:
  chatshelf list               List all conversation logs
  chatshelf search <keyword>   Search conversation logs by keyword
  chatshelf show <path>        Print a conversation log
  chatshelf delete <path>      Delete a conversation log

Manage rules using:
  chatshelf rules              List, show, write, and delete rule files`

const shelfShortDesc string = "Chatshelf - Agent Conversation Catalog"

func NewShelfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatshelf",
		Short: shelfShortDesc,
		Long:  shelfLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("log-json", false, "Emit structured JSON logs")
	cmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	cmd.PersistentFlags().String("config-dir", "", "Override the .chatshelf config directory")

	// Registered flags bind to viper keys so they participate in the
	// flags > env > config file > defaults precedence chain.
	_ = config.AddStringFlag(cmd, config.RootFlags, config.FlagClaudeDir, "")
	_ = config.AddStringFlag(cmd, config.RootFlags, config.FlagCodexDir, "")
	_ = config.AddUintFlag(cmd, config.RootFlags, config.FlagScanWorkers, config.NewDefaultConfig().Scan.Workers)

	// Add subcommands
	cmd.AddCommand(listcmder.NewListCmd())
	cmd.AddCommand(searchcmder.NewSearchCmd())
	cmd.AddCommand(showcmder.NewShowCmd())
	cmd.AddCommand(deletecmder.NewDeleteCmd())
	cmd.AddCommand(rulescmder.NewRulesCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
