package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, path, content string) {
	t.Helper()
	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestCollectFrom_EFI(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sys/firmware/efi"), 0755))
	writeFixture(t, root, "proc/meminfo", "MemTotal:       16384000 kB\nMemFree:  100 kB\n")
	writeFixture(t, root, "etc/os-release", "NAME=\"Void Linux\"\nID=void\n")
	writeFixture(t, root, "proc/sys/kernel/osrelease", "6.6.21_1\n")

	info, err := CollectFrom(root)
	require.NoError(t, err)

	assert.True(t, info.EFI)
	assert.Equal(t, uint64(16384000*1024), info.RAMBytes)
	assert.Equal(t, 15, info.RAMGiB())
	assert.True(t, info.RAMOK())
	assert.Equal(t, "Void Linux", info.Distro)
	assert.Equal(t, "6.6.21_1", info.Kernel)
	assert.Positive(t, info.CPUCount)
}

func TestCollectFrom_BIOS(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "proc/meminfo", "MemTotal:       1024000 kB\n")

	info, err := CollectFrom(root)
	require.NoError(t, err)

	assert.False(t, info.EFI)
	assert.False(t, info.RAMOK(), "under 2 GiB should fail the RAM check")
	assert.Equal(t, "Unknown", info.Distro, "missing os-release falls back to Unknown")
}

func TestCollectFrom_MissingMeminfo(t *testing.T) {
	_, err := CollectFrom(t.TempDir())
	assert.Error(t, err)
}

func TestParseMemTotal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{"normal", "MemTotal:       8192000 kB\nMemFree: 1 kB\n", 8192000 * 1024, false},
		{"not first line", "MemFree: 1 kB\nMemTotal: 2048 kB\n", 2048 * 1024, false},
		{"missing", "MemFree: 1 kB\n", 0, true},
		{"garbage value", "MemTotal: lots kB\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMemTotal(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOSRelease(t *testing.T) {
	name, version := parseOSRelease("NAME=\"Debian GNU/Linux\"\nVERSION_ID=\"12\"\nID=debian\n")
	assert.Equal(t, "Debian GNU/Linux", name)
	assert.Equal(t, "12", version)

	name, version = parseOSRelease("")
	assert.Equal(t, "Unknown", name)
	assert.Empty(t, version)

	// unquoted values are valid per os-release(5)
	name, version = parseOSRelease("NAME=Alpine\nVERSION_ID=3.19.1\n")
	assert.Equal(t, "Alpine", name)
	assert.Equal(t, "3.19.1", version)
}
