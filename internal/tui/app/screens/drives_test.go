package screens

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/disk"
)

func loadedDrives(devices disk.Devices) *DrivesModel {
	m := NewDrivesModel(nil)
	m.Update(drivesLoadedMsg{devices: devices})
	return m
}

func discoveredDevices() disk.Devices {
	return disk.Devices{
		{Name: "sda", Path: "/dev/sda", SizeBytes: 1000204886016, Transport: "sata", Rotational: true},
		{Name: "sdb", Path: "/dev/sdb", SizeBytes: 500107862016, Transport: "sata"},
	}
}

func TestDrivesContinueBlockedWithoutSelection(t *testing.T) {
	m := loadedDrives(discoveredDevices())

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	status, ok := cmd().(StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "warning", status.Type)
}

func TestDrivesContinueWithSelection(t *testing.T) {
	m := loadedDrives(discoveredDevices())

	m.Update(key("space"))
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	chosen, ok := cmd().(DrivesChosenMsg)
	require.True(t, ok)
	require.Len(t, chosen.Drives, 1)
	assert.Equal(t, "sda", chosen.Drives[0].Name)
}

func TestDrivesRestoresPreviousSelection(t *testing.T) {
	devices := discoveredDevices()
	m := NewDrivesModel(disk.Devices{devices[1]})
	m.Update(drivesLoadedMsg{devices: devices})

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	chosen, ok := cmd().(DrivesChosenMsg)
	require.True(t, ok)
	require.Len(t, chosen.Drives, 1)
	assert.Equal(t, "sdb", chosen.Drives[0].Name)
}

func TestDrivesDiscoveryFailure(t *testing.T) {
	m := NewDrivesModel(nil)
	m.Update(drivesLoadedMsg{err: errors.New("lsblk not found")})

	view := m.ViewContent(80, 24)
	assert.Contains(t, view, "lsblk not found")

	_, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
}
