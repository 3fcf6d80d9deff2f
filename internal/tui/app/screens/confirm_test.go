package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/installer"
)

func testPlan(t *testing.T) *installer.Plan {
	t.Helper()
	plan, err := installer.Build(installer.ModeNew, discoveredDevices(), config.Defaults())
	require.NoError(t, err)
	return plan
}

func TestConfirmAccept(t *testing.T) {
	m := NewConfirmModel(testPlan(t), false)

	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "install", nav.Target)
}

func TestConfirmDecline(t *testing.T) {
	m := NewConfirmModel(testPlan(t), false)

	_, cmd := m.Update(key("n"))
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "back", nav.Target)
}

func TestConfirmViewWarnsAboutDataLoss(t *testing.T) {
	m := NewConfirmModel(testPlan(t), false)

	view := m.ViewContent(100, 40)
	assert.Contains(t, view, "DESTROYED")
	assert.Contains(t, view, "/dev/sda")
	assert.Contains(t, view, "Dry run")
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	m := NewConfirmModel(testPlan(t), false)

	_, cmd := m.Update(key("x"))
	assert.Nil(t, cmd)
}
