package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title> <author> <year>",
		Short: "Add a book to the catalog",
		Long: `Add a book and print the ID it was assigned.

IDs are assigned by the catalog: one more than the last book's ID, or 1
when the catalog is empty. Title and author must not contain '|' or line
breaks.

A negative year looks like a flag; put '--' before the arguments so it is
read as the year. Flags go before the '--'.

Examples:
  libcat add "Dune" "Frank Herbert" 1965 --file ~/books.txt
  libcat add --file ~/books.txt -- "The Odyssey" Homer -700`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt("year", args[2])
			if err != nil {
				return err
			}
			b, err := lib.Add(args[0], args[1], year)
			if err != nil {
				return err
			}
			ok(cmd.OutOrStdout(), "Book added with ID: %d", b.ID)
			return nil
		},
	}
	return cmd
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, s)
	}
	return n, nil
}
