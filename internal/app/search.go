package app

import (
	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		title  string
		author string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find books by title or author",
		Long: `Case-insensitive substring search over titles or authors.

Examples:
  libcat search --title dune
  libcat search --author "le guin" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var books []catalog.Book
			if cmd.Flags().Changed("title") {
				books = lib.SearchByTitle(title)
			} else {
				books = lib.SearchByAuthor(author)
			}
			return printBooks(cmd.OutOrStdout(), books, catalog.MsgNoMatches, asJSON)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Match against titles")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Match against authors")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.MarkFlagsMutuallyExclusive("title", "author")
	cmd.MarkFlagsOneRequired("title", "author")
	return cmd
}
