package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show catalog file and circulation summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			stats := lib.Stats()

			header(out, "Catalog")
			printField(out, "file", lib.Path())
			printField(out, "books", fmt.Sprintf("%d", stats.Total))
			printField(out, "available", fmt.Sprintf("%d", stats.Available))
			printField(out, "borrowed", fmt.Sprintf("%d", stats.Borrowed))

			if _, err := os.Stat(lib.Path()); errors.Is(err, os.ErrNotExist) {
				printField(out, "on disk", "not written yet")
				return nil
			}
			size, err := util.FileSize(lib.Path())
			if err != nil {
				return err
			}
			sum, err := util.SHA256File(lib.Path())
			if err != nil {
				return err
			}
			printField(out, "size", fmt.Sprintf("%d bytes", size))
			printField(out, "sha256", sum)

			if skipped := lib.Skipped(); len(skipped) > 0 {
				fmt.Fprintln(out)
				warn(out, "%d malformed line(s) were skipped and will be dropped on the next write (libcat tidy):", len(skipped))
				for _, pe := range skipped {
					fmt.Fprintf(out, "  line %d: %s\n", pe.Line, pe.Reason)
				}
			}
			return nil
		},
	}
}
