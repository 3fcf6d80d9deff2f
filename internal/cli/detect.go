package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvermeer/zbminstall/internal/sysinfo"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show hardware and boot environment facts",
	Long: `Detect the facts the wizard checks before installing:
boot mode, memory, CPU count, and the running distribution.

Exits non-zero when the system is booted in legacy BIOS mode, since
ZFSBootMenu requires UEFI.`,
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	info, err := sysinfo.Collect()
	if err != nil {
		return fmt.Errorf("failed to read system information: %w", err)
	}

	if info.EFI {
		printInfo("%s Boot mode:    UEFI", render("✓", styleSuccess))
	} else {
		printInfo("%s Boot mode:    legacy BIOS", render("✗", styleError))
	}

	mark := render("✓", styleSuccess)
	if !info.RAMOK() {
		mark = render("⚠", styleWarning)
	}
	printInfo("%s Memory:       %d GiB", mark, info.RAMGiB())
	printInfo("%s CPUs:         %d", render("✓", styleSuccess), info.CPUCount)

	distro := info.Distro
	if info.DistroVersion != "" {
		distro += " " + info.DistroVersion
	}
	printInfo("%s Distribution: %s", render("✓", styleSuccess), distro)
	printInfo("  Hostname:     %s", info.Hostname)
	printInfo("  Kernel:       %s", info.Kernel)

	if !info.EFI {
		return fmt.Errorf("system booted in legacy BIOS mode, UEFI is required")
	}
	if !info.RAMOK() {
		printWarning("less than %d GiB of memory, ZFS may perform poorly", sysinfo.MinRAMGiB)
	}

	return nil
}
