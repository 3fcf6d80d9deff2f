package screens

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/history"
	"github.com/pvermeer/zbminstall/internal/preflight"
	"github.com/pvermeer/zbminstall/internal/sysinfo"
)

func useTempConfig(t *testing.T) {
	t.Helper()
	config.SetConfigPath(filepath.Join(t.TempDir(), "config.yaml"))
	t.Cleanup(func() { config.SetConfigPath("") })
}

func validatedModel(t *testing.T, checks []preflight.Check) *ValidateModel {
	t.Helper()
	m := NewValidateModel(preflight.Input{Info: sysinfo.Info{Hostname: "box"}})
	updated, _ := m.Update(validateDoneMsg{checks: checks})
	return updated.(*ValidateModel)
}

func failingChecks() []preflight.Check {
	return []preflight.Check{
		{Name: "EFI firmware", Status: preflight.StatusFail, Message: "legacy BIOS boot is not supported by ZFSBootMenu"},
		{Name: "Memory", Status: preflight.StatusPass},
	}
}

func passingChecks() []preflight.Check {
	return []preflight.Check{
		{Name: "EFI firmware", Status: preflight.StatusPass},
		{Name: "Target drives", Status: preflight.StatusWarn, Message: "sdc is removable media"},
	}
}

func TestValidateEnterBlockedOnFailure(t *testing.T) {
	useTempConfig(t)
	m := validatedModel(t, failingChecks())
	assert.False(t, m.Passed())

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	status, ok := cmd().(StatusMsg)
	require.True(t, ok, "expected a status message, not navigation")
	assert.Equal(t, "error", status.Type)
}

func TestValidateEnterContinuesWhenPassed(t *testing.T) {
	useTempConfig(t)
	m := validatedModel(t, passingChecks())
	assert.True(t, m.Passed(), "warnings should not block")

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, Navigate("confirm"), cmd())
}

func TestValidateKeysIgnoredWhileLoading(t *testing.T) {
	m := NewValidateModel(preflight.Input{})
	require.True(t, m.loading)

	_, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestValidateRerun(t *testing.T) {
	useTempConfig(t)
	m := validatedModel(t, passingChecks())

	updated, cmd := m.Update(key("r"))
	require.NotNil(t, cmd)
	rerun := updated.(*ValidateModel)
	assert.True(t, rerun.loading)
	assert.False(t, rerun.Passed())
}

func TestValidateRecordsHistory(t *testing.T) {
	useTempConfig(t)
	validatedModel(t, failingChecks())

	entries, err := history.Read(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, history.OpValidate, entries[0].Operation)
	assert.Equal(t, "box", entries[0].Host)
	assert.Equal(t, "1 check(s) failed", entries[0].Summary)
}
