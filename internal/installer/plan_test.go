package installer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/disk"
)

func testDrives(n int) disk.Devices {
	all := disk.Devices{
		{Name: "sda", Path: "/dev/sda", SizeBytes: 1 << 40},
		{Name: "sdb", Path: "/dev/sdb", SizeBytes: 1 << 40},
		{Name: "sdc", Path: "/dev/sdc", SizeBytes: 1 << 40},
		{Name: "nvme0n1", Path: "/dev/nvme0n1", SizeBytes: 1 << 40},
	}
	return all[:n]
}

func stepIDs(p *Plan) []string {
	ids := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.ID
	}
	return ids
}

func TestBuild_NewSingle(t *testing.T) {
	plan, err := Build(ModeNew, testDrives(1), config.Defaults())
	require.NoError(t, err)

	assert.Equal(t, []string{"partition", "pool", "datasets", "bootloader", "finalize"}, stepIDs(plan))
}

func TestBuild_ExistingAddsMigration(t *testing.T) {
	plan, err := Build(ModeExisting, testDrives(1), config.Defaults())
	require.NoError(t, err)

	assert.Contains(t, stepIDs(plan), "migrate")
}

func TestBuild_RaidTopology(t *testing.T) {
	s := config.Defaults()
	s.Raid = config.RaidMirror

	plan, err := Build(ModeNew, testDrives(2), s)
	require.NoError(t, err)

	var poolCmd Command
	for _, step := range plan.Steps {
		if step.ID == "pool" {
			poolCmd = step.Commands[0]
		}
	}
	require.NotNil(t, poolCmd)
	line := poolCmd.String()
	assert.Contains(t, line, " mirror ")
	assert.Contains(t, line, "/dev/sda2")
	assert.Contains(t, line, "/dev/sdb2")
}

func TestBuild_SingleOmitsTopologyKeyword(t *testing.T) {
	plan, err := Build(ModeNew, testDrives(1), config.Defaults())
	require.NoError(t, err)

	line := plan.Steps[1].Commands[0].String()
	assert.NotContains(t, line, "single", "zpool create has no keyword for a plain vdev")
}

func TestBuild_TooFewDrives(t *testing.T) {
	s := config.Defaults()
	s.Raid = config.RaidZ2

	_, err := Build(ModeNew, testDrives(3), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 4 drives")
}

func TestBuild_NoDrives(t *testing.T) {
	_, err := Build(ModeNew, nil, config.Defaults())
	assert.Error(t, err)
}

func TestBuild_InvalidSettings(t *testing.T) {
	s := config.Defaults()
	s.PoolName = ""
	_, err := Build(ModeNew, testDrives(1), s)
	assert.Error(t, err)
}

func TestBuild_EncryptionOptions(t *testing.T) {
	s := config.Defaults()
	s.Encryption = true

	plan, err := Build(ModeNew, testDrives(1), s)
	require.NoError(t, err)

	line := plan.Steps[1].Commands[0].String()
	assert.Contains(t, line, "encryption=aes-256-gcm")
	assert.Contains(t, line, "keyformat=passphrase")
}

func TestBuild_SwapZvol(t *testing.T) {
	s := config.Defaults()
	s.SwapGiB = 8

	plan, err := Build(ModeNew, testDrives(1), s)
	require.NoError(t, err)

	found := false
	for _, step := range plan.Steps {
		if step.ID != "datasets" {
			continue
		}
		for _, cmd := range step.Commands {
			if strings.Contains(cmd.String(), "8G") && strings.Contains(cmd.String(), "zroot/swap") {
				found = true
			}
		}
	}
	assert.True(t, found, "swap zvol command missing from dataset step")
}

func TestPartitionPath(t *testing.T) {
	assert.Equal(t, "/dev/sda2", zfsPartition(disk.Device{Path: "/dev/sda"}))
	assert.Equal(t, "/dev/nvme0n1p2", zfsPartition(disk.Device{Path: "/dev/nvme0n1"}))
	assert.Equal(t, "/dev/nvme0n1p1", efiPartition(disk.Device{Path: "/dev/nvme0n1"}))
}

func TestModeText(t *testing.T) {
	assert.Equal(t, "New Installation", ModeNew.Title())
	assert.Equal(t, "Migrate System", ModeExisting.Title())
	assert.NotEmpty(t, ModeNew.Description())
	assert.NotEmpty(t, ModeExisting.Description())
}
