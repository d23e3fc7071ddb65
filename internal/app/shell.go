package app

import (
	"github.com/blackwell-systems/libcat/internal/shell"
	"github.com/blackwell-systems/libcat/internal/tui"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the numbered console menu",
		Long: `Run the plain-text menu loop. Choices and field values are read one
per line from stdin, so the shell can be scripted:

  printf '1\nDune\nFrank Herbert\n1965\n9\n' | libcat shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) error {
	return shell.New(lib, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run(cmd.Context())
}

// runHub shows the interactive menu, runs the chosen action in the plain
// terminal and returns to the menu until the user quits.
func runHub(cmd *cobra.Command) error {
	items := make([]tui.MenuItem, len(shell.Menu))
	for i, m := range shell.Menu {
		items[i] = tui.MenuItem{Key: string(m.Action), Label: m.Label, Description: m.Description}
	}
	quit := string(shell.ActionQuit)
	sh := shell.New(lib, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	for {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		stats := lib.Stats()
		hubCtx := tui.HubContext{Path: lib.Path(), BookCount: stats.Total, Available: stats.Available}

		key, err := tui.RunHub(hubCtx, items, quit)
		if err != nil {
			return err
		}
		if key == quit {
			return nil
		}
		if !sh.Dispatch(shell.Action(key)) || !sh.Pause() {
			return nil
		}
	}
}
