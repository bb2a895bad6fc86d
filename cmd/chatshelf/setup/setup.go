// Package setup builds the shared dependencies (logger, catalog, rule store)
// that chatshelf commands construct from persistent flags.
package setup

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/pkg/catalog"
	"github.com/chatshelf/chatshelf/pkg/cliui"
	"github.com/chatshelf/chatshelf/pkg/codexcfg"
	"github.com/chatshelf/chatshelf/pkg/config"
	"github.com/chatshelf/chatshelf/pkg/logger"
	"github.com/chatshelf/chatshelf/pkg/rules"
)

// Logger builds the command logger from the root persistent flags
// (--debug, --log-json, --log-file). When --log-file is set, records are
// fanned out to the terminal handler and a JSON handler on the file. The
// returned closer releases the log file and must be called on exit.
func Logger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	debug, _ := cmd.Flags().GetBool("debug")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	logFile, _ := cmd.Flags().GetString("log-file")

	termLogger := logger.New(
		logger.WithWriter(os.Stderr),
		logger.WithDebug(debug),
		logger.WithJSON(logJSON),
		logger.WithPretty(!logJSON && cliui.IsTerminal(os.Stderr)),
	)

	if logFile == "" {
		return termLogger, func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", logFile, err)
	}

	fileLogger := logger.New(
		logger.WithWriter(f),
		logger.WithDebug(debug),
		logger.WithJSON(true),
	)

	return logger.Multi(termLogger, fileLogger), func() { _ = f.Close() }, nil
}

// Catalog builds a conversation catalog from the resolved runtime settings.
func Catalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	rt, err := config.ResolveRuntime(cmd)
	if err != nil {
		return nil, err
	}

	return catalog.New(
		catalog.WithClaudeDir(rt.ClaudeDir),
		catalog.WithCodexDir(rt.CodexDir),
		catalog.WithScanWorkers(rt.ScanWorkers),
	), nil
}

// Rules builds a rule store from the resolved runtime settings.
func Rules(cmd *cobra.Command) (*rules.Store, error) {
	rt, err := config.ResolveRuntime(cmd)
	if err != nil {
		return nil, err
	}

	accessor, err := codexcfg.NewAccessor(rt.CodexDir)
	if err != nil {
		return nil, err
	}

	return rules.NewStore(accessor, rules.WithClaudeDir(rt.ClaudeDir)), nil
}
