package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Add books from a YAML export",
		Long: `Add every book listed in a YAML file produced by 'libcat export'.

Imported books get fresh IDs; the IDs in the file are ignored. Books
marked unavailable are added and then borrowed, so their state carries
over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			books, err := catalog.ParseYAML(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			added := 0
			for _, in := range books {
				b, err := lib.Add(in.Title, in.Author, in.Year)
				if err != nil {
					warn(out, "skipping %q: %v", in.Title, err)
					continue
				}
				if !in.Available {
					if _, err := lib.Borrow(b.ID); err != nil {
						return fmt.Errorf("marking book %d borrowed: %w", b.ID, err)
					}
				}
				logger.Debug("imported book", zap.Int("id", b.ID), zap.String("title", b.Title))
				added++
			}
			ok(out, "Imported %d of %d books", added, len(books))
			return nil
		},
	}
}
