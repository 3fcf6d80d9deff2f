package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
)

func TestSettingsCycleRaid(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "host")

	m.Update(key("j")) // topology row
	m.Update(key("l"))
	assert.Equal(t, config.RaidMirror, m.Settings().Raid)

	m.Update(key("h"))
	assert.Equal(t, config.RaidSingle, m.Settings().Raid)

	// Cycling left from the first value wraps to the last
	m.Update(key("h"))
	assert.Equal(t, config.RaidZ2, m.Settings().Raid)
}

func TestSettingsEncryptionTogglesPassphraseField(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "host")
	assert.NotContains(t, m.ViewContent(80, 24), "Passphrase")

	m.Update(key("j")) // topology
	m.Update(key("j")) // compression
	m.Update(key("j")) // encryption
	m.Update(key("space"))
	assert.True(t, m.Settings().Encryption)
	assert.Contains(t, m.ViewContent(80, 24), "Passphrase")

	// Turning encryption off clears the passphrase
	m.settings.Passphrase = "secret"
	m.Update(key("space"))
	assert.False(t, m.Settings().Encryption)
	assert.Empty(t, m.Settings().Passphrase)
}

func TestSettingsEditPoolName(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "host")

	m.Update(key("enter")) // edit pool name
	assert.True(t, m.Editing())

	m.input.SetValue("tank")
	m.Update(key("enter"))
	assert.False(t, m.Editing())
	assert.Equal(t, "tank", m.Settings().PoolName)
}

func TestSettingsEditCancelKeepsOldValue(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "host")

	m.Update(key("enter"))
	m.input.SetValue("scratch")
	m.Update(key("esc"))

	assert.Equal(t, "zroot", m.Settings().PoolName)
}

func TestSettingsContinueValidates(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "host")
	m.settings.PoolName = "9bad"

	m.Update(key("j")) // move off the text field
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	status, ok := cmd().(StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "error", status.Type)
}

func TestSettingsContinueEmitsSettings(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "box")

	m.Update(key("j"))
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	done, ok := cmd().(SettingsDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "zroot", done.Settings.PoolName)
	assert.Equal(t, "box", done.Settings.Hostname)
}

func TestSettingsSwapClamped(t *testing.T) {
	m := NewSettingsModel(config.Defaults(), "host")

	// Move to the swap row (encryption off, passphrase hidden)
	for i := 0; i < 5; i++ {
		m.Update(key("j"))
	}

	m.Update(key("h"))
	assert.Equal(t, 0, m.Settings().SwapGiB)

	for i := 0; i < 100; i++ {
		m.Update(key("l"))
	}
	assert.Equal(t, 64, m.Settings().SwapGiB)
}
