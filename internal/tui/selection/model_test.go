package selection

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/disk"
)

func testDevices() disk.Devices {
	return disk.Devices{
		{Name: "nvme0n1", Path: "/dev/nvme0n1", SizeBytes: 512110190592, Model: "Samsung 980", Transport: "nvme"},
		{Name: "sda", Path: "/dev/sda", SizeBytes: 1000204886016, Model: "WDC WD10EZEX", Transport: "sata", Rotational: true},
		{Name: "sdb", Path: "/dev/sdb", SizeBytes: 500107862016, Model: "Crucial MX500", Transport: "sata"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "space" {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleSelection(t *testing.T) {
	m := New("Select drives", testDevices())

	m, _ = m.Update(keyMsg("space"))
	assert.Equal(t, 1, m.SelectedCount())

	// Toggling the same item again deselects it
	m, _ = m.Update(keyMsg("space"))
	assert.Equal(t, 0, m.SelectedCount())
}

func TestToggleFollowsCursor(t *testing.T) {
	m := New("Select drives", testDevices())

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("space"))

	selected := m.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "sda", selected[0].Name)
}

func TestCursorStaysInBounds(t *testing.T) {
	m := New("Select drives", testDevices())

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("j"))
	}
	m, _ = m.Update(keyMsg("space"))
	selected := m.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "sdb", selected[0].Name)

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("k"))
	}
	m, _ = m.Update(keyMsg("space"))
	assert.Equal(t, 2, m.SelectedCount())
}

func TestConfirmRequiresSelection(t *testing.T) {
	m := New("Select drives", testDevices())

	m, _ = m.Update(keyMsg("enter"))
	assert.False(t, m.Confirmed())

	m, _ = m.Update(keyMsg("space"))
	m, _ = m.Update(keyMsg("enter"))
	assert.True(t, m.Confirmed())
}

func TestSelectAllAndNone(t *testing.T) {
	m := New("Select drives", testDevices())

	m, _ = m.Update(keyMsg("a"))
	assert.Equal(t, 3, m.SelectedCount())

	m, _ = m.Update(keyMsg("n"))
	assert.Equal(t, 0, m.SelectedCount())
}

func TestTabFiltering(t *testing.T) {
	m := New("Select drives", testDevices())

	// Switch to the HDD tab; only sda should be visible
	m, _ = m.Update(keyMsg("3"))
	m, _ = m.Update(keyMsg("a"))

	selected := m.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "sda", selected[0].Name)
}

func TestSelectionSurvivesTabSwitch(t *testing.T) {
	m := New("Select drives", testDevices())

	m, _ = m.Update(keyMsg("space")) // select nvme0n1
	m, _ = m.Update(keyMsg("3"))     // hdd tab
	m, _ = m.Update(keyMsg("0"))     // back to all

	assert.Equal(t, 1, m.SelectedCount())
}

func TestSetSelected(t *testing.T) {
	m := New("Select drives", testDevices())
	m.SetSelected(map[string]bool{"sda": true, "sdb": true})

	assert.Equal(t, 2, m.SelectedCount())
}

func TestSearchFilters(t *testing.T) {
	m := New("Select drives", testDevices())

	m, _ = m.Update(keyMsg("/"))
	assert.True(t, m.Searching())

	m, _ = m.Update(keyMsg("c"))
	m, _ = m.Update(keyMsg("r"))
	m, _ = m.Update(keyMsg("u"))
	m, _ = m.Update(keyMsg("enter"))
	assert.False(t, m.Searching())

	m, _ = m.Update(keyMsg("space"))
	selected := m.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "sdb", selected[0].Name)
}
