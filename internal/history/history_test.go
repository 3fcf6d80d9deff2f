package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
)

func useTempDir(t *testing.T) {
	t.Helper()
	config.SetConfigPath(filepath.Join(t.TempDir(), "config.yaml"))
	t.Cleanup(func() { config.SetConfigPath("") })
}

func TestLogAndRead(t *testing.T) {
	useTempDir(t)

	require.NoError(t, Log(OpValidate, "testhost", "", "passed"))
	require.NoError(t, LogInstall("testhost", "zroot", []string{"sda", "sdb"}, false, nil))

	entries, err := Read(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, OpInstall, entries[0].Operation)
	assert.Equal(t, "testhost", entries[0].Host)
	assert.Contains(t, entries[0].Details, "pool=zroot")
	assert.Contains(t, entries[0].Details, "drives=sda,sdb")
	assert.Contains(t, entries[0].Details, "simulated")
	assert.Equal(t, "success", entries[0].Summary)
	assert.Equal(t, OpValidate, entries[1].Operation)
}

func TestLogPlan(t *testing.T) {
	useTempDir(t)

	require.NoError(t, LogPlan("h", "tank", []string{"sda", "sdb"}, 7))

	entries, err := Read(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, OpPlan, entries[0].Operation)
	assert.Contains(t, entries[0].Details, "pool=tank")
	assert.Contains(t, entries[0].Details, "drives=sda,sdb")
	assert.Equal(t, "7 steps", entries[0].Summary)
}

func TestReadLimit(t *testing.T) {
	useTempDir(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, Log(OpPlan, "h", "", "ok"))
	}

	entries, err := Read(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReadMissingFile(t *testing.T) {
	useTempDir(t)

	entries, err := Read(10)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestLogInstallFailure(t *testing.T) {
	useTempDir(t)

	require.NoError(t, LogInstall("h", "zroot", []string{"sda"}, true, assert.AnError))

	entries, err := Read(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Summary, "failed")
	assert.Contains(t, entries[0].Details, "applied")
}

func TestEntryRoundTrip(t *testing.T) {
	e := Entry{
		Operation: OpInstall,
		Host:      "box",
		Details:   "pool=zroot",
		Summary:   "success",
	}
	e.Timestamp = e.Timestamp.UTC()

	parsed, err := parseEntry(formatEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e.Operation, parsed.Operation)
	assert.Equal(t, e.Host, parsed.Host)
	assert.Equal(t, e.Details, parsed.Details)
	assert.Equal(t, e.Summary, parsed.Summary)
}

func TestParseEntryMalformed(t *testing.T) {
	_, err := parseEntry("not|enough|parts")
	assert.Error(t, err)

	_, err = parseEntry("bad-time|install|h|d|s")
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	useTempDir(t)

	require.NoError(t, Log(OpPlan, "h", "", "ok"))
	require.NoError(t, Clear())

	entries, err := Read(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
