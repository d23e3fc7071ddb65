package app

import (
	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a book from the catalog",
		Long: `Remove every book with the given ID and rewrite the catalog file.

Deleting an unknown ID is not an error; the file is rewritten unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}
			n, err := lib.Delete(id)
			if err != nil {
				return err
			}
			logger.Debug("delete", zap.Int("id", id), zap.Int("removed", n))
			ok(cmd.OutOrStdout(), catalog.MsgDeleted)
			return nil
		},
	}
}
