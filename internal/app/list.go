package app

import (
	"io"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		availableOnly bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List books in catalog order",
		Long: `List every book, or only the ones that can be borrowed.

Examples:
  libcat list
  libcat list --available
  libcat list --json | jq '.[].title'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, empty := lib.ListAll(), catalog.MsgEmpty
			if availableOnly {
				books, empty = lib.ListAvailable(), catalog.MsgNoneAvailable
			}
			return printBooks(cmd.OutOrStdout(), books, empty, asJSON)
		},
	}

	cmd.Flags().BoolVarP(&availableOnly, "available", "a", false, "Only list books that are not borrowed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// printBooks writes one display line per book, or empty when there are none.
// JSON output is always an array, even when empty.
func printBooks(w io.Writer, books []catalog.Book, empty string, asJSON bool) error {
	if asJSON {
		data, err := catalog.MarshalJSON(books)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	if len(books) == 0 {
		warn(w, "%s", empty)
		return nil
	}
	for _, b := range books {
		if _, err := io.WriteString(w, b.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
