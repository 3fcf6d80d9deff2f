package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/sysinfo"
	"github.com/pvermeer/zbminstall/internal/tui/app/screens"
)

type noopRunner struct{}

func (noopRunner) RunStep(installer.Step) error { return nil }

func useTempConfig(t *testing.T) {
	t.Helper()
	config.SetConfigPath(filepath.Join(t.TempDir(), "config.yaml"))
	t.Cleanup(func() { config.SetConfigPath("") })
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testInfo() screens.InfoLoadedMsg {
	return screens.InfoLoadedMsg{
		Info: &sysinfo.Info{EFI: true, RAMBytes: 8 << 30, CPUCount: 4, Hostname: "box"},
	}
}

func wizardDrives() disk.Devices {
	return disk.Devices{
		{Name: "sda", Path: "/dev/sda", SizeBytes: 1000204886016, Transport: "sata"},
	}
}

func TestWizardStartsOnWelcome(t *testing.T) {
	m := New(config.Defaults(), Options{})
	assert.Equal(t, ScreenWelcome, m.screen)
}

func TestWizardForwardFlow(t *testing.T) {
	useTempConfig(t)

	m := New(config.Defaults(), Options{Runner: noopRunner{}})
	m = apply(t, m, testInfo())

	m = apply(t, m, screens.ModeChosenMsg{Mode: installer.ModeNew})
	assert.Equal(t, ScreenDrives, m.screen)

	m = apply(t, m, screens.DrivesChosenMsg{Drives: wizardDrives()})
	assert.Equal(t, ScreenSettings, m.screen)

	m = apply(t, m, screens.SettingsDoneMsg{Settings: config.Defaults()})
	assert.Equal(t, ScreenValidate, m.screen)

	m = apply(t, m, screens.Navigate("confirm"))
	assert.Equal(t, ScreenConfirm, m.screen)
	require.NotNil(t, m.plan)

	m = apply(t, m, screens.Navigate("install"))
	assert.Equal(t, ScreenInstall, m.screen)

	m = apply(t, m, screens.InstallFinishedMsg{Failed: false})
	assert.Equal(t, ScreenDone, m.screen)
}

func TestWizardEscStepsBack(t *testing.T) {
	m := New(config.Defaults(), Options{})
	m = apply(t, m, testInfo())
	m = apply(t, m, screens.ModeChosenMsg{Mode: installer.ModeNew})
	m = apply(t, m, screens.DrivesChosenMsg{Drives: wizardDrives()})
	require.Equal(t, ScreenSettings, m.screen)

	m = apply(t, m, keyMsg("esc"))
	assert.Equal(t, ScreenDrives, m.screen)

	m = apply(t, m, keyMsg("esc"))
	assert.Equal(t, ScreenMode, m.screen)

	m = apply(t, m, keyMsg("esc"))
	assert.Equal(t, ScreenWelcome, m.screen)

	// Welcome is the first screen, Esc stays put
	m = apply(t, m, keyMsg("esc"))
	assert.Equal(t, ScreenWelcome, m.screen)
}

func TestWizardQuitKey(t *testing.T) {
	m := New(config.Defaults(), Options{})

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestWizardQuitIgnoredDuringInstall(t *testing.T) {
	m := New(config.Defaults(), Options{Runner: noopRunner{}})
	m = apply(t, m, testInfo())
	m = apply(t, m, screens.ModeChosenMsg{Mode: installer.ModeNew})
	m = apply(t, m, screens.DrivesChosenMsg{Drives: wizardDrives()})
	m = apply(t, m, screens.SettingsDoneMsg{Settings: config.Defaults()})
	m = apply(t, m, screens.Navigate("confirm"))
	m = apply(t, m, screens.Navigate("install"))
	require.Equal(t, ScreenInstall, m.screen)

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)
	assert.Equal(t, ScreenInstall, m.screen)
	assert.Nil(t, cmd)

	// Esc cannot leave a running install either
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)
	assert.Equal(t, ScreenInstall, m.screen)
}

func TestWizardConfirmNeedsPlan(t *testing.T) {
	m := New(config.Defaults(), Options{})
	m = apply(t, m, testInfo())

	// No drives chosen: building the plan fails, stay on validate
	m = apply(t, m, screens.Navigate("confirm"))
	assert.Equal(t, ScreenValidate, m.screen)
	assert.Nil(t, m.plan)
}
