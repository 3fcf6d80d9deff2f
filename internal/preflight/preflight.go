// Package preflight validates the wizard's choices before anything is
// written to disk.
package preflight

import (
	"fmt"
	"strings"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/sysinfo"
)

// Status classifies a check outcome
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is one validation result
type Check struct {
	Name    string
	Status  Status
	Message string
}

// PathLooker reports whether a binary is on PATH
type PathLooker interface {
	LookPath(name string) error
}

// Input is everything the checks inspect
type Input struct {
	Info     sysinfo.Info
	Devices  disk.Devices
	Selected []string
	Mode     installer.Mode
	Settings config.Settings
	Apply    bool
	Tools    PathLooker
}

// Run executes all preflight checks and returns their results
func Run(in Input) []Check {
	checks := []Check{
		checkEFI(in.Info),
		checkRAM(in.Info),
		checkSelection(in),
		checkTopology(in),
		checkPoolName(in.Settings),
		checkEncryption(in.Settings),
	}
	if in.Apply && in.Tools != nil {
		checks = append(checks, checkTools(in)...)
	}
	return checks
}

// AllPass reports whether no check failed. Warnings do not block.
func AllPass(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusFail {
			return false
		}
	}
	return true
}

func checkEFI(info sysinfo.Info) Check {
	if info.EFI {
		return Check{Name: "EFI firmware", Status: StatusPass}
	}
	return Check{
		Name:    "EFI firmware",
		Status:  StatusFail,
		Message: "legacy BIOS boot is not supported by ZFSBootMenu",
	}
}

func checkRAM(info sysinfo.Info) Check {
	if info.RAMOK() {
		return Check{
			Name:    "Memory",
			Status:  StatusPass,
			Message: fmt.Sprintf("%d GiB", info.RAMGiB()),
		}
	}
	return Check{
		Name:    "Memory",
		Status:  StatusFail,
		Message: fmt.Sprintf("%d GiB detected, %d GiB required", info.RAMGiB(), sysinfo.MinRAMGiB),
	}
}

func checkSelection(in Input) Check {
	if len(in.Selected) == 0 {
		return Check{Name: "Target drives", Status: StatusFail, Message: "no drives selected"}
	}

	// Every drive is inspected so the message names all problems, not
	// just the first one.
	status := StatusPass
	var problems []string
	flag := func(s Status, format string, args ...any) {
		if s == StatusFail || status == StatusPass {
			status = s
		}
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := make(map[string]bool, len(in.Selected))
	for _, name := range in.Selected {
		if seen[name] {
			flag(StatusFail, "drive %s selected twice", name)
			continue
		}
		seen[name] = true
		dev, ok := in.Devices.ByName(name)
		if !ok {
			flag(StatusFail, "drive %s no longer present", name)
			continue
		}
		if dev.Removable {
			flag(StatusWarn, "%s is removable media", name)
		}
	}

	message := fmt.Sprintf("%d drive(s)", len(in.Selected))
	if len(problems) > 0 {
		message = strings.Join(problems, "; ")
	}
	return Check{Name: "Target drives", Status: status, Message: message}
}

func checkTopology(in Input) Check {
	need := in.Settings.Raid.MinDrives()
	if len(in.Selected) >= need {
		return Check{
			Name:    "Pool topology",
			Status:  StatusPass,
			Message: string(in.Settings.Raid),
		}
	}
	return Check{
		Name:    "Pool topology",
		Status:  StatusFail,
		Message: fmt.Sprintf("%s needs %d drives, %d selected", in.Settings.Raid, need, len(in.Selected)),
	}
}

func checkPoolName(s config.Settings) Check {
	if err := s.Validate(); err != nil {
		return Check{Name: "Settings", Status: StatusFail, Message: err.Error()}
	}
	return Check{Name: "Settings", Status: StatusPass}
}

func checkEncryption(s config.Settings) Check {
	if !s.Encryption {
		return Check{Name: "Encryption", Status: StatusPass, Message: "disabled"}
	}
	if s.Passphrase == "" {
		return Check{Name: "Encryption", Status: StatusFail, Message: "passphrase required"}
	}
	if len(s.Passphrase) < 8 {
		return Check{Name: "Encryption", Status: StatusWarn, Message: "passphrase shorter than 8 characters"}
	}
	return Check{Name: "Encryption", Status: StatusPass}
}

// requiredTools are needed on PATH for a real (non-simulated) install
var requiredTools = []string{"zpool", "zfs", "sgdisk", "mkfs.vfat", "efibootmgr", "curl"}

func checkTools(in Input) []Check {
	tools := requiredTools
	if in.Mode == installer.ModeExisting {
		tools = append(tools, "rsync")
	}

	var checks []Check
	for _, tool := range tools {
		if err := in.Tools.LookPath(tool); err != nil {
			checks = append(checks, Check{
				Name:    "Tool: " + tool,
				Status:  StatusFail,
				Message: "not found on PATH",
			})
		} else {
			checks = append(checks, Check{Name: "Tool: " + tool, Status: StatusPass})
		}
	}
	return checks
}
