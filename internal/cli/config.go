package cli

import (
	"fmt"
	"os"
	osexec "os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pvermeer/zbminstall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage the zbminstall configuration.

Subcommands:
  show   Display current configuration
  edit   Open config file in editor
  path   Show config file path
  init   Initialize configuration (interactive)`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in editor",
	RunE:  runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create the config file with the pool settings the wizard starts
from. Runs an interactive form unless flags are given.

For scripting:
  zbminstall config init --pool tank --raid mirror --compression zstd`,
	RunE: runConfigInit,
}

var (
	// config init flags
	initPool        string
	initRaid        string
	initCompression string
	initHostname    string
	initSwap        int
)

func init() {
	configInitCmd.Flags().StringVar(&initPool, "pool", "", "pool name")
	configInitCmd.Flags().StringVar(&initRaid, "raid", "", "pool topology (single, mirror, raidz1, raidz2)")
	configInitCmd.Flags().StringVar(&initCompression, "compression", "", "compression (lz4, zstd, off)")
	configInitCmd.Flags().StringVar(&initHostname, "hostname", "", "hostname for the installed system")
	configInitCmd.Flags().IntVar(&initSwap, "swap", -1, "swap zvol size in GiB, 0 disables")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if !config.Exists() {
		return fmt.Errorf("config file does not exist; run 'zbminstall config init' first")
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	editorCmd := osexec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if config.Exists() && !assumeYes {
		printWarning("Config file already exists at %s", path)
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Overwrite existing config?").
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !overwrite {
			printInfo("Init cancelled")
			return nil
		}
	}

	settings := config.Defaults()
	hostname, _ := os.Hostname()
	settings.Hostname = hostname

	// Flags mean non-interactive use
	nonInteractive := initPool != "" || initRaid != "" || initCompression != "" ||
		initHostname != "" || initSwap >= 0

	if nonInteractive {
		if initPool != "" {
			settings.PoolName = initPool
		}
		if initRaid != "" {
			settings.Raid = config.RaidMode(initRaid)
		}
		if initCompression != "" {
			settings.Compression = config.Compression(initCompression)
		}
		if initHostname != "" {
			settings.Hostname = initHostname
		}
		if initSwap >= 0 {
			settings.SwapGiB = initSwap
		}
	} else {
		raid := string(settings.Raid)
		compression := string(settings.Compression)
		swap := strconv.Itoa(settings.SwapGiB)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Pool name").
					Description("Name of the ZFS root pool").
					Value(&settings.PoolName).
					Validate(func(s string) error {
						probe := settings
						probe.PoolName = strings.TrimSpace(s)
						return probe.Validate()
					}),

				huh.NewSelect[string]().
					Title("Topology").
					Description("How the pool spreads across drives").
					Options(
						huh.NewOption("single - one drive, no redundancy", string(config.RaidSingle)),
						huh.NewOption("mirror - identical copies on every drive", string(config.RaidMirror)),
						huh.NewOption("raidz1 - one drive may fail", string(config.RaidZ1)),
						huh.NewOption("raidz2 - two drives may fail", string(config.RaidZ2)),
					).
					Value(&raid),

				huh.NewSelect[string]().
					Title("Compression").
					Options(
						huh.NewOption("lz4", string(config.CompressionLZ4)),
						huh.NewOption("zstd", string(config.CompressionZstd)),
						huh.NewOption("off", string(config.CompressionOff)),
					).
					Value(&compression),

				huh.NewInput().
					Title("Hostname").
					Description("Hostname for the installed system").
					Value(&settings.Hostname),

				huh.NewInput().
					Title("Swap zvol (GiB)").
					Description("0 disables the swap zvol").
					Value(&swap).
					Validate(func(s string) error {
						n, err := strconv.Atoi(strings.TrimSpace(s))
						if err != nil || n < 0 {
							return fmt.Errorf("enter a non-negative number")
						}
						return nil
					}),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}

		settings.PoolName = strings.TrimSpace(settings.PoolName)
		settings.Hostname = strings.TrimSpace(settings.Hostname)
		settings.Raid = config.RaidMode(raid)
		settings.Compression = config.Compression(compression)
		settings.SwapGiB, _ = strconv.Atoi(strings.TrimSpace(swap))
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	if err := config.Save(settings); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInfo("Created config file at %s", path)
	printInfo("Run 'zbminstall' to start the wizard")
	return nil
}
