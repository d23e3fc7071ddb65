package tui

import (
	"os"

	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should use interactive TUI mode.
// TUI mode is enabled when:
// - stdin and stdout are both terminals (not piped or redirected)
// - --no-interactive flag is not set
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() || !util.IsTerminal(os.Stdin) {
		return false
	}

	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
