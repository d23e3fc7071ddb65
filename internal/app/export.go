package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML or JSON",
		Long: `Export every book as YAML (default) or JSON.

Examples:
  libcat export > books.yml
  libcat export --format json -o books.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := lib.ListAll()

			var (
				data []byte
				err  error
			)
			switch format {
			case "yaml", "yml":
				data, err = catalog.MarshalYAML(books)
			case "json":
				data, err = catalog.MarshalJSON(books)
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			ok(cmd.ErrOrStderr(), "Exported %d books to %s", len(books), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
