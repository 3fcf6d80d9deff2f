package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// DoneModel is the model for the completion screen
type DoneModel struct {
	failed  bool
	apply   bool
	results []installer.StepResult
	width   int
	height  int
}

// NewDoneModel creates a new completion model
func NewDoneModel(failed, apply bool, results []installer.StepResult) *DoneModel {
	return &DoneModel{
		failed:  failed,
		apply:   apply,
		results: results,
		width:   80,
		height:  24,
	}
}

// Init initializes the completion model
func (m *DoneModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *DoneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the completion screen (legacy)
func (m *DoneModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *DoneModel) ViewContent(width, height int) string {
	var b strings.Builder

	if m.failed {
		b.WriteString(styles.ErrorStyle.Render("Installation failed"))
		b.WriteString("\n\n")
		for _, result := range m.results {
			if result.Err != nil {
				b.WriteString(styles.CrossStyle.String())
				b.WriteString(" ")
				b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("%s: %v", result.Step.Title, result.Err)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString("The system was left as the failing step left it. Check the log for details.\n")
	} else {
		b.WriteString(styles.TitleStyle.Render("Installation complete"))
		b.WriteString("\n\n")
		for _, result := range m.results {
			b.WriteString(styles.CheckmarkStyle.String())
			b.WriteString(" ")
			b.WriteString(result.Step.Title)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.apply {
			b.WriteString("Remove the installation media and reboot into ZFSBootMenu.\n")
		} else {
			b.WriteString(styles.WarningStyle.Render("This was a dry run. Re-run with --apply to install for real."))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Press Enter or q to exit"))

	return b.String()
}
