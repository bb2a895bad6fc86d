package listcmder

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/chatshelf/chatshelf/pkg/catalog"
)

// writeJSON emits the listing as indented JSON for scripting.
func writeJSON(cmd *cobra.Command, metas []catalog.ConversationMeta) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(metas)
}
