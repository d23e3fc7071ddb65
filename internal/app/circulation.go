package app

import (
	"fmt"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newBorrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <id>",
		Short: "Check out an available book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCirculation(cmd, args[0], lib.Borrow)
		},
	}
}

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <id>",
		Short: "Check a borrowed book back in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCirculation(cmd, args[0], lib.Return)
		},
	}
}

// runCirculation applies a borrow or return. An unknown ID is an error so
// scripts can detect it; a no-op on a known book only warns.
func runCirculation(cmd *cobra.Command, arg string, fn func(int) (catalog.Status, error)) error {
	id, err := parseInt("id", arg)
	if err != nil {
		return err
	}
	st, err := fn(id)
	if err != nil {
		return err
	}
	switch {
	case st == catalog.StatusNotFound:
		return fmt.Errorf("book %d not found", id)
	case st.OK():
		ok(cmd.OutOrStdout(), "%s", st)
	default:
		warn(cmd.OutOrStdout(), "%s", st)
	}
	return nil
}
