// Package sysinfo inspects the running system: firmware type, memory,
// CPU count, and distribution. The wizard's welcome and validation
// screens consume the collected Info.
package sysinfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// MinRAMGiB is the minimum amount of memory required for a ZFS install.
const MinRAMGiB = 2

// Info describes the host the installer is running on
type Info struct {
	EFI           bool
	RAMBytes      uint64
	CPUCount      int
	Distro        string
	DistroVersion string
	Hostname      string
	Kernel        string
}

// RAMGiB returns total memory in whole GiB
func (i Info) RAMGiB() int {
	return int(i.RAMBytes / (1 << 30))
}

// RAMOK reports whether the host meets the memory minimum
func (i Info) RAMOK() bool {
	return i.RAMGiB() >= MinRAMGiB
}

// Collect gathers system information from the real root filesystem
func Collect() (Info, error) {
	return CollectFrom("/")
}

// CollectFrom gathers system information reading proc/sys paths under
// root. Tests pass a fixture directory.
func CollectFrom(root string) (Info, error) {
	info := Info{
		CPUCount: runtime.NumCPU(),
	}

	// EFI systems expose /sys/firmware/efi; its absence means legacy BIOS
	if _, err := os.Stat(filepath.Join(root, "sys/firmware/efi")); err == nil {
		info.EFI = true
	}

	f, err := os.Open(filepath.Join(root, "proc/meminfo"))
	if err != nil {
		return info, fmt.Errorf("failed to read meminfo: %w", err)
	}
	info.RAMBytes, err = parseMemTotal(f)
	f.Close()
	if err != nil {
		return info, err
	}

	if data, err := os.ReadFile(filepath.Join(root, "etc/os-release")); err == nil {
		info.Distro, info.DistroVersion = parseOSRelease(string(data))
	} else {
		info.Distro = "Unknown"
	}

	if data, err := os.ReadFile(filepath.Join(root, "proc/sys/kernel/osrelease")); err == nil {
		info.Kernel = strings.TrimSpace(string(data))
	}

	if h, err := os.Hostname(); err == nil {
		info.Hostname = h
	}

	return info, nil
}

// parseMemTotal extracts MemTotal from /proc/meminfo content
func parseMemTotal(r io.Reader) (uint64, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse MemTotal %q: %w", fields[1], err)
		}
		return kb * 1024, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan meminfo: %w", err)
	}
	return 0, fmt.Errorf("MemTotal not found in meminfo")
}

// parseOSRelease extracts NAME and VERSION_ID from os-release content
func parseOSRelease(data string) (name, version string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "NAME":
			name = value
		case "VERSION_ID":
			version = value
		}
	}
	if name == "" {
		name = "Unknown"
	}
	return name, version
}
