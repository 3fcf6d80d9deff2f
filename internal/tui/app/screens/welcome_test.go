package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/sysinfo"
)

func loadedWelcome(efi bool) *WelcomeModel {
	m := NewWelcomeModel()
	info := sysinfo.Info{
		EFI:      efi,
		RAMBytes: 8 << 30,
		CPUCount: 4,
		Distro:   "Debian GNU/Linux",
		Hostname: "testhost",
	}
	m.Update(InfoLoadedMsg{Info: &info})
	return m
}

func TestWelcomeBlocksOnBIOS(t *testing.T) {
	m := loadedWelcome(false)
	assert.False(t, m.CanContinue())

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	status, ok := cmd().(StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "error", status.Type)
}

func TestWelcomeContinuesOnEFI(t *testing.T) {
	m := loadedWelcome(true)
	assert.True(t, m.CanContinue())

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "mode", nav.Target)
}

func TestWelcomeIgnoresEnterWhileLoading(t *testing.T) {
	m := NewWelcomeModel()
	_, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestWelcomeViewShowsLowMemoryWarning(t *testing.T) {
	m := NewWelcomeModel()
	info := sysinfo.Info{EFI: true, RAMBytes: 1 << 30, CPUCount: 2, Distro: "Void"}
	m.Update(InfoLoadedMsg{Info: &info})

	view := m.ViewContent(80, 24)
	assert.Contains(t, view, "recommended")
}
