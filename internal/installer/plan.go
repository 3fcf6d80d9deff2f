// Package installer builds and executes the install step plan.
package installer

import (
	"fmt"
	"strings"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/disk"
)

// Mode selects what the wizard is installing
type Mode string

const (
	// ModeNew wipes the target drives and installs a fresh system
	ModeNew Mode = "new"
	// ModeExisting copies the running system onto the new pool
	ModeExisting Mode = "existing"
)

// AllModes returns install modes in display order
func AllModes() []Mode {
	return []Mode{ModeNew, ModeExisting}
}

// Title returns the mode's display name
func (m Mode) Title() string {
	switch m {
	case ModeExisting:
		return "Migrate System"
	default:
		return "New Installation"
	}
}

// Description returns the mode's one-line description
func (m Mode) Description() string {
	switch m {
	case ModeExisting:
		return "Copy running system to new ZFS installation"
	default:
		return "Install ZFS on empty drives (DESTROYS data)"
	}
}

// Command is one external command of a step
type Command []string

// String renders the command as a shell-style line
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Step is one unit of install work with a user-facing title
type Step struct {
	ID       string
	Title    string
	Commands []Command
}

// Plan is the ordered list of steps the install screen executes
type Plan struct {
	Mode     Mode
	Drives   disk.Devices
	Settings config.Settings
	Steps    []Step
}

// Build assembles the step plan for the chosen mode, drives and settings
func Build(mode Mode, drives disk.Devices, settings config.Settings) (*Plan, error) {
	if len(drives) == 0 {
		return nil, fmt.Errorf("no target drives selected")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if len(drives) < settings.Raid.MinDrives() {
		return nil, fmt.Errorf("%s needs at least %d drives, have %d",
			settings.Raid, settings.Raid.MinDrives(), len(drives))
	}

	p := &Plan{Mode: mode, Drives: drives, Settings: settings}
	p.Steps = append(p.Steps, partitionStep(drives))
	p.Steps = append(p.Steps, poolStep(drives, settings))
	p.Steps = append(p.Steps, datasetStep(settings))
	if mode == ModeExisting {
		p.Steps = append(p.Steps, migrateStep(settings))
	}
	p.Steps = append(p.Steps, bootloaderStep(drives))
	p.Steps = append(p.Steps, finalizeStep(settings))
	return p, nil
}

func partitionStep(drives disk.Devices) Step {
	step := Step{ID: "partition", Title: "Partitioning drives"}
	for _, d := range drives {
		step.Commands = append(step.Commands,
			Command{"sgdisk", "--zap-all", d.Path},
			Command{"sgdisk", "-n1:1M:+512M", "-t1:EF00", d.Path},
			Command{"sgdisk", "-n2:0:0", "-t2:BF00", d.Path},
		)
	}
	return step
}

func poolStep(drives disk.Devices, s config.Settings) Step {
	args := []string{
		"zpool", "create", "-f",
		"-o", "ashift=12",
		"-O", "compression=" + string(s.Compression),
		"-O", "acltype=posixacl",
		"-O", "xattr=sa",
		"-O", "mountpoint=none",
	}
	if s.Encryption {
		args = append(args,
			"-O", "encryption=aes-256-gcm",
			"-O", "keyformat=passphrase",
			"-O", "keylocation=prompt",
		)
	}
	args = append(args, "-R", "/mnt", s.PoolName)
	if s.Raid != config.RaidSingle {
		args = append(args, string(s.Raid))
	}
	for _, d := range drives {
		args = append(args, zfsPartition(d))
	}

	return Step{
		ID:       "pool",
		Title:    fmt.Sprintf("Creating pool %q (%s)", s.PoolName, s.Raid),
		Commands: []Command{args},
	}
}

func datasetStep(s config.Settings) Step {
	pool := s.PoolName
	step := Step{
		ID:    "datasets",
		Title: "Creating datasets",
		Commands: []Command{
			{"zfs", "create", "-o", "mountpoint=none", pool + "/ROOT"},
			{"zfs", "create", "-o", "mountpoint=/", "-o", "canmount=noauto", pool + "/ROOT/default"},
			{"zfs", "create", "-o", "mountpoint=/home", pool + "/home"},
			{"zpool", "set", "bootfs=" + pool + "/ROOT/default", pool},
		},
	}
	if s.SwapGiB > 0 {
		step.Commands = append(step.Commands, Command{
			"zfs", "create",
			"-V", fmt.Sprintf("%dG", s.SwapGiB),
			"-b", "4096",
			"-o", "compression=off",
			"-o", "sync=always",
			pool + "/swap",
		})
	}
	return step
}

func migrateStep(s config.Settings) Step {
	return Step{
		ID:    "migrate",
		Title: "Copying running system",
		Commands: []Command{
			{"zfs", "mount", s.PoolName + "/ROOT/default"},
			{"rsync", "-aHAX", "--info=progress2",
				"--exclude=/proc/*", "--exclude=/sys/*", "--exclude=/dev/*",
				"--exclude=/run/*", "--exclude=/tmp/*", "--exclude=/mnt/*",
				"/", "/mnt/"},
		},
	}
}

func bootloaderStep(drives disk.Devices) Step {
	step := Step{
		ID:    "bootloader",
		Title: "Installing ZFSBootMenu",
		Commands: []Command{
			{"mkdir", "-p", "/mnt/boot/efi"},
		},
	}
	for i, d := range drives {
		efi := efiPartition(d)
		step.Commands = append(step.Commands, Command{"mkfs.vfat", "-F32", efi})
		if i == 0 {
			step.Commands = append(step.Commands, Command{"mount", efi, "/mnt/boot/efi"})
		}
		step.Commands = append(step.Commands, Command{
			"efibootmgr", "--create",
			"--disk", d.Path, "--part", "1",
			"--label", "ZFSBootMenu",
			"--loader", `\EFI\ZBM\zfsbootmenu.EFI`,
		})
	}
	step.Commands = append(step.Commands,
		Command{"mkdir", "-p", "/mnt/boot/efi/EFI/ZBM"},
		Command{"curl", "-Lo", "/mnt/boot/efi/EFI/ZBM/zfsbootmenu.EFI",
			"https://get.zfsbootmenu.org/efi"},
	)
	return step
}

func finalizeStep(s config.Settings) Step {
	return Step{
		ID:    "finalize",
		Title: "Exporting pool",
		Commands: []Command{
			{"umount", "/mnt/boot/efi"},
			{"zpool", "export", s.PoolName},
		},
	}
}

// zfsPartition returns the ZFS member partition path for a drive
func zfsPartition(d disk.Device) string {
	return partitionPath(d, 2)
}

// efiPartition returns the EFI system partition path for a drive
func efiPartition(d disk.Device) string {
	return partitionPath(d, 1)
}

// partitionPath follows the kernel naming rule: devices ending in a
// digit get a "p" separator before the partition number.
func partitionPath(d disk.Device, n int) string {
	path := d.Path
	if len(path) > 0 && path[len(path)-1] >= '0' && path[len(path)-1] <= '9' {
		return fmt.Sprintf("%sp%d", path, n)
	}
	return fmt.Sprintf("%s%d", path, n)
}
