package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/exec"
)

var drivesJSON bool

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List drives eligible as install targets",
	Long: `List the whole drives the wizard would offer as install targets.

Drives with mounted partitions, optical drives, and loop devices are
excluded.`,
	RunE: runDrives,
}

func init() {
	drivesCmd.Flags().BoolVar(&drivesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(drivesCmd)
}

func runDrives(cmd *cobra.Command, args []string) error {
	devices, err := disk.Discover(exec.Default)
	if err != nil {
		return fmt.Errorf("drive discovery failed: %w", err)
	}

	if drivesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(devices)
	}

	if len(devices) == 0 {
		printInfo("No eligible drives found.")
		return nil
	}

	for _, dev := range devices {
		line := fmt.Sprintf("%-14s %-5s %9s", dev.Path, dev.Class(), dev.HumanSize())
		if dev.Model != "" {
			line += "  " + render(dev.Model, styleDim)
		}
		if dev.Removable {
			line += "  " + render("(removable)", styleWarning)
		}
		printInfo("%s", line)
	}

	return nil
}
