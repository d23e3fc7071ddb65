package app

import (
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/libcat/internal/catalog"
	"github.com/blackwell-systems/libcat/internal/config"
	"github.com/blackwell-systems/libcat/internal/logging"
	"github.com/blackwell-systems/libcat/internal/tui"
	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
	lib    *catalog.Catalog

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagFile          string
	flagLogLevel      string
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "libcat",
		Short: "Manage a small library catalog stored in a flat text file",
		Long: `libcat keeps a catalog of books in a plain text file, one book per line:

  id|title|author|year|available

Books can be added, deleted, borrowed, returned, listed and searched.
Every change rewrites the whole file.

Run 'libcat' with no arguments to launch the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runHub(cmd)
			}
			return runShell(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/libcat/config.yml)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Catalog file (overrides catalog.path)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagFile != "" {
			cfg.Catalog.Path = util.ExpandHome(flagFile)
		}
		if flagLogLevel != "" {
			cfg.Log.Level = flagLogLevel
		}

		logger, err = logging.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}

		if !needsCatalog(cmd) {
			return nil
		}
		lib, err = catalog.Open(cfg.EffectiveCatalogPath(), logger)
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newDeleteCmd(),
		newBorrowCmd(),
		newReturnCmd(),
		newListCmd(),
		newSearchCmd(),
		newShowCmd(),
		newStatusCmd(),
		newTidyCmd(),
		newExportCmd(),
		newImportCmd(),
		newShellCmd(),
		newConfigCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// needsCatalog reports whether cmd works on the catalog file.
func needsCatalog(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["catalog"] == "none" {
			return false
		}
	}
	return true
}

var noCatalog = map[string]string{"catalog": "none"}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// ok prints a green success line.
func ok(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(format, a...))
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", color.CyanString(label+":"), value)
}
