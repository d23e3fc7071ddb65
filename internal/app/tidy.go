package app

import (
	"github.com/spf13/cobra"
)

func newTidyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tidy",
		Short: "Rewrite the catalog file, dropping malformed lines",
		Long: `Rewrite the catalog file from the books that loaded cleanly.

Lines that could not be parsed (see 'libcat status') are removed. Running
tidy on a clean catalog leaves the file byte-for-byte unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dropped := len(lib.Skipped())
			if err := lib.Save(); err != nil {
				return err
			}
			ok(cmd.OutOrStdout(), "Rewrote %s (%d books, %d malformed line(s) dropped)", lib.Path(), lib.Len(), dropped)
			return nil
		},
	}
}
