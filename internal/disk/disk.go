// Package disk discovers candidate target drives via lsblk.
package disk

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// Class categorizes a drive by its bus and medium
type Class string

const (
	ClassNVMe Class = "nvme"
	ClassSSD  Class = "ssd"
	ClassHDD  Class = "hdd"
	ClassUSB  Class = "usb"
)

// AllClasses returns drive classes in display order
func AllClasses() []Class {
	return []Class{ClassNVMe, ClassSSD, ClassHDD, ClassUSB}
}

// Device is one whole-disk block device eligible as an install target
type Device struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	SizeBytes  uint64 `json:"size_bytes"`
	Model      string `json:"model"`
	Transport  string `json:"transport"`
	Rotational bool   `json:"rotational"`
	Removable  bool   `json:"removable"`
}

// Class derives the drive class from transport and medium
func (d Device) Class() Class {
	switch {
	case d.Transport == "nvme":
		return ClassNVMe
	case d.Transport == "usb":
		return ClassUSB
	case d.Rotational:
		return ClassHDD
	default:
		return ClassSSD
	}
}

// HumanSize renders the drive size as e.g. "1.0 TB"
func (d Device) HumanSize() string {
	return humanize.Bytes(d.SizeBytes)
}

// Devices is a sortable collection of drives
type Devices []Device

// Names returns device names in order
func (ds Devices) Names() []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}

// ByName returns the device with the given name, if present
func (ds Devices) ByName(name string) (Device, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d, true
		}
	}
	return Device{}, false
}

// Sort orders devices by name for stable display
func (ds Devices) Sort() {
	sort.Slice(ds, func(i, j int) bool { return ds[i].Name < ds[j].Name })
}

// lsblk --json output shape. SIZE is numeric because we pass --bytes.
type lsblkReport struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

type lsblkDevice struct {
	Name       string        `json:"name"`
	Path       string        `json:"path"`
	Size       uint64        `json:"size"`
	Model      *string       `json:"model"`
	Type       string        `json:"type"`
	Tran       *string       `json:"tran"`
	Rota       bool          `json:"rota"`
	RM         bool          `json:"rm"`
	Mountpoint *string       `json:"mountpoint"`
	Children   []lsblkDevice `json:"children"`
}

// lister is the subset of the exec runner discovery needs
type lister interface {
	RunOutput(name string, args ...string) (string, error)
}

// lsblkColumns are the output columns requested from lsblk
const lsblkColumns = "NAME,PATH,SIZE,MODEL,TYPE,TRAN,ROTA,RM,MOUNTPOINT"

// Discover lists whole disks that are safe to offer as install targets
func Discover(runner lister) (Devices, error) {
	out, err := runner.RunOutput("lsblk", "--json", "--bytes", "--output", lsblkColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to run lsblk: %w", err)
	}
	return ParseLsblk([]byte(out))
}

// ParseLsblk parses lsblk --json --bytes output into candidate devices.
// Disks carrying a mounted filesystem (directly or via a partition) are
// excluded: the installer must never offer the live medium or the
// running root as a wipe target.
func ParseLsblk(data []byte) (Devices, error) {
	var report lsblkReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse lsblk output: %w", err)
	}

	var devices Devices
	for _, bd := range report.BlockDevices {
		if bd.Type != "disk" {
			continue
		}
		if hasMounts(bd) {
			continue
		}

		dev := Device{
			Name:       bd.Name,
			Path:       bd.Path,
			SizeBytes:  bd.Size,
			Rotational: bd.Rota,
			Removable:  bd.RM,
		}
		if dev.Path == "" {
			dev.Path = "/dev/" + bd.Name
		}
		if bd.Model != nil {
			dev.Model = strings.TrimSpace(*bd.Model)
		}
		if bd.Tran != nil {
			dev.Transport = *bd.Tran
		}
		devices = append(devices, dev)
	}

	devices.Sort()
	return devices, nil
}

func hasMounts(bd lsblkDevice) bool {
	if bd.Mountpoint != nil && *bd.Mountpoint != "" {
		return true
	}
	for _, child := range bd.Children {
		if hasMounts(child) {
			return true
		}
	}
	return false
}
