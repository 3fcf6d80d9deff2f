package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/exec"
	"github.com/pvermeer/zbminstall/internal/history"
	"github.com/pvermeer/zbminstall/internal/installer"
)

var (
	planMode        string
	planPool        string
	planRaid        string
	planCompression string
	planSwap        int
	planCommands    bool
)

var planCmd = &cobra.Command{
	Use:   "plan <drive>...",
	Short: "Preview the install plan for the given drives",
	Long: `Build and print the install plan for the given drives without
running anything. Drives are named as in 'zbminstall drives',
for example: zbminstall plan --raid mirror sda sdb`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planMode, "mode", string(installer.ModeNew), "install mode (new or existing)")
	planCmd.Flags().StringVar(&planPool, "pool", "", "pool name (default from config)")
	planCmd.Flags().StringVar(&planRaid, "raid", "", "pool topology (single, mirror, raidz1, raidz2)")
	planCmd.Flags().StringVar(&planCompression, "compression", "", "compression (lz4, zstd, off)")
	planCmd.Flags().IntVar(&planSwap, "swap", -1, "swap zvol size in GiB, 0 disables")
	planCmd.Flags().BoolVar(&planCommands, "commands", false, "print the commands of each step")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	settings := config.Defaults()
	if config.Exists() {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if planPool != "" {
		settings.PoolName = planPool
	}
	if planRaid != "" {
		settings.Raid = config.RaidMode(planRaid)
	}
	if planCompression != "" {
		settings.Compression = config.Compression(planCompression)
	}
	if planSwap >= 0 {
		settings.SwapGiB = planSwap
	}

	mode := installer.Mode(planMode)
	if mode != installer.ModeNew && mode != installer.ModeExisting {
		return fmt.Errorf("unknown mode %q", planMode)
	}

	devices, err := disk.Discover(exec.Default)
	if err != nil {
		return fmt.Errorf("drive discovery failed: %w", err)
	}

	var drives disk.Devices
	for _, name := range args {
		dev, ok := devices.ByName(name)
		if !ok {
			return fmt.Errorf("drive %q not found or not eligible", name)
		}
		drives = append(drives, dev)
	}

	plan, err := installer.Build(mode, drives, settings)
	if err != nil {
		return err
	}

	printInfo("%s", render(fmt.Sprintf("Plan: %s on %s (%s)", settings.PoolName, joinNames(drives), settings.Raid), styleBold))
	printInfo("")

	for i, step := range plan.Steps {
		printInfo("%d. %s", i+1, step.Title)
		if planCommands {
			for _, c := range step.Commands {
				printInfo("     %s", render(c.String(), styleDim))
			}
		}
	}

	printInfo("")
	printWarning("all data on %s will be destroyed when this plan runs", joinNames(drives))

	host := settings.Hostname
	if host == "" {
		host, _ = os.Hostname()
	}
	if err := history.LogPlan(host, settings.PoolName, drives.Names(), len(plan.Steps)); err != nil {
		printWarning("could not record history: %v", err)
	}
	return nil
}

func joinNames(drives disk.Devices) string {
	out := ""
	for i, d := range drives {
		if i > 0 {
			out += ", "
		}
		out += d.Name
	}
	return out
}
