package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/tui/progress"
)

// InstallModel is the model for the installation progress screen.
// Keyboard input is ignored while steps are running.
type InstallModel struct {
	progress progress.Model
	done     bool
	width    int
	height   int
}

// NewInstallModel creates a new install model
func NewInstallModel(plan *installer.Plan, runner installer.Runner) *InstallModel {
	return &InstallModel{
		progress: progress.New("Installing", plan.Steps, runner),
		width:    80,
		height:   24,
	}
}

// Init starts the install run
func (m *InstallModel) Init() tea.Cmd {
	return m.progress.Init()
}

// Update handles messages
func (m *InstallModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// No way out mid-install except ctrl+c
		return m, nil

	case progress.DoneMsg:
		m.done = true
		failed := msg.Failed
		results := msg.Results
		return m, func() tea.Msg {
			return InstallFinishedMsg{Failed: failed, Results: results}
		}
	}

	var cmd tea.Cmd
	m.progress, cmd = m.progress.Update(msg)
	return m, cmd
}

// Running reports whether steps are still executing
func (m *InstallModel) Running() bool {
	return !m.done
}

// View renders the install screen (legacy)
func (m *InstallModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *InstallModel) ViewContent(width, height int) string {
	return m.progress.View()
}
