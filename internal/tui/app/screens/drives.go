package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/exec"
	"github.com/pvermeer/zbminstall/internal/tui/selection"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// drivesLoadedMsg carries the result of drive discovery
type drivesLoadedMsg struct {
	devices disk.Devices
	err     error
}

// DrivesModel is the model for the target drive selection screen
type DrivesModel struct {
	selection selection.Model
	selected  map[string]bool
	loaded    bool
	loadErr   error
	width     int
	height    int
}

// NewDrivesModel creates a new drive selection model. Previously
// selected drive names are restored after discovery.
func NewDrivesModel(selected disk.Devices) *DrivesModel {
	preset := make(map[string]bool, len(selected))
	for _, dev := range selected {
		preset[dev.Name] = true
	}
	return &DrivesModel{
		selected: preset,
		width:    80,
		height:   24,
	}
}

// Init discovers available drives
func (m *DrivesModel) Init() tea.Cmd {
	return func() tea.Msg {
		devices, err := disk.Discover(exec.Default)
		return drivesLoadedMsg{devices: devices, err: err}
	}
}

// Update handles messages
func (m *DrivesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.loaded {
			var cmd tea.Cmd
			m.selection, cmd = m.selection.Update(msg)
			return m, cmd
		}
		return m, nil

	case drivesLoadedMsg:
		m.loaded = true
		m.loadErr = msg.err
		if msg.err == nil {
			m.selection = selection.New("Select Target Drives", msg.devices)
			m.selection.SetSelected(m.selected)
			m.selection, _ = m.selection.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, nil

	case tea.KeyMsg:
		if !m.loaded || m.loadErr != nil {
			return m, nil
		}

		wasSearching := m.selection.Searching()
		var cmd tea.Cmd
		m.selection, cmd = m.selection.Update(msg)

		// Continue is blocked until at least one drive is selected
		if m.selection.Confirmed() {
			drives := m.selection.Selected()
			return m, func() tea.Msg { return DrivesChosenMsg{Drives: drives} }
		}
		if !wasSearching && msg.Type == tea.KeyEnter && m.selection.SelectedCount() == 0 {
			return m, tea.Batch(cmd, func() tea.Msg {
				return StatusWarning("select at least one drive to continue")
			})
		}
		return m, cmd
	}

	return m, nil
}

// Searching reports whether the embedded search input owns the keyboard
func (m *DrivesModel) Searching() bool {
	return m.loaded && m.selection.Searching()
}

// View renders the drives screen (legacy)
func (m *DrivesModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *DrivesModel) ViewContent(width, height int) string {
	if !m.loaded {
		return styles.DimmedStyle.Render("Scanning drives...")
	}
	if m.loadErr != nil {
		return styles.ErrorStyle.Render("Drive discovery failed: " + m.loadErr.Error())
	}
	return m.selection.View()
}
