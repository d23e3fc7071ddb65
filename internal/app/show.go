package app

import (
	"fmt"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}
			b, found := lib.Get(id)
			if !found {
				return fmt.Errorf("book %d not found", id)
			}
			return printBooks(cmd.OutOrStdout(), []catalog.Book{b}, "", asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
