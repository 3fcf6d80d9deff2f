package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/debug"
	"github.com/pvermeer/zbminstall/internal/logging"
	"github.com/pvermeer/zbminstall/internal/tui/app"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
	"github.com/pvermeer/zbminstall/pkg/version"
)

var (
	// Global flags
	cfgFile   string
	applyRun  bool
	verbose   bool
	noColor   bool
	assumeYes bool
)

// Lipgloss styles for plain command output
var (
	styleSuccess = lipgloss.NewStyle().Foreground(styles.CatGreen).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(styles.CatRed).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(styles.CatPeach).Bold(true)
	styleBold    = lipgloss.NewStyle().Foreground(styles.CatLavender).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(styles.CatOverlay0)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "zbminstall",
	Short: "Install ZFSBootMenu with a ZFS root pool",
	Long: `zbminstall is a text-based wizard that sets up a ZFS root pool
and the ZFSBootMenu bootloader on one or more drives.

Run without arguments to start the interactive wizard. By default the
wizard performs a dry run: every step is shown and simulated, but no
command touches the system. Pass --apply to install for real.

Subcommands expose the non-interactive pieces: hardware detection,
drive listing, plan preview, configuration, and history.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		if cfgFile != "" {
			config.SetConfigPath(cfgFile)
		}

		if verbose {
			return logging.Initialize("debug")
		}
		return logging.InitializeFromEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch the wizard when no subcommand is provided
		return runWizard()
	},
	SilenceUsage: true,
}

// runWizard launches the installer TUI
func runWizard() error {
	// File logging only, the TUI owns the terminal.
	// Enabled with ZBMINSTALL_DEBUG=1.
	debug.Init()
	defer debug.Close()

	debug.Log("runWizard: starting, apply=%v", applyRun)

	settings := config.Defaults()
	if config.Exists() {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
		debug.Log("runWizard: loaded config, pool=%s", settings.PoolName)
	}

	model := app.New(settings, app.Options{Apply: applyRun})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	debug.Log("runWizard: tea.Program finished, err=%v", err)
	return err
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/zbminstall/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&applyRun, "apply", false, "run real commands instead of a dry run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "detailed log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmations")
}

// printInfo prints an info message
func printInfo(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// printWarning prints a warning message
func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// render returns styled text unless --no-color is set
func render(text string, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
