package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/tui/app/components"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// ConfirmModel is the model for the final confirmation screen
type ConfirmModel struct {
	plan   *installer.Plan
	apply  bool
	width  int
	height int
}

// NewConfirmModel creates a new confirmation model
func NewConfirmModel(plan *installer.Plan, apply bool) *ConfirmModel {
	return &ConfirmModel{
		plan:   plan,
		apply:  apply,
		width:  80,
		height: 24,
	}
}

// Init initializes the confirmation model
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return m, func() tea.Msg { return Navigate("install") }
		case "n", "N":
			return m, func() tea.Msg { return Navigate("back") }
		}
	}

	return m, nil
}

// View renders the confirmation screen (legacy)
func (m *ConfirmModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *ConfirmModel) ViewContent(width, height int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Confirm Installation"))
	b.WriteString("\n\n")

	plan := m.plan
	s := plan.Settings

	b.WriteString(fmt.Sprintf("Mode:         %s\n", plan.Mode.Title()))
	b.WriteString(fmt.Sprintf("Pool:         %s (%s, compression=%s)\n", s.PoolName, s.Raid, s.Compression))
	b.WriteString(fmt.Sprintf("Encryption:   %s\n", onOff(s.Encryption)))
	b.WriteString(fmt.Sprintf("Hostname:     %s\n", s.Hostname))
	b.WriteString(fmt.Sprintf("Swap zvol:    %s\n", swapLabel(s.SwapGiB)))
	b.WriteString("\n")

	var drives strings.Builder
	for i, dev := range plan.Drives {
		if i > 0 {
			drives.WriteString("\n")
		}
		drives.WriteString(fmt.Sprintf(" %s  %s", dev.Path, dev.HumanSize()))
		if dev.Model != "" {
			drives.WriteString("  " + styles.DimmedStyle.Render(dev.Model))
		}
	}
	boxWidth := width - 4
	if boxWidth > 70 {
		boxWidth = 70
	}
	box := components.NewBox("Target drives", boxWidth, 0)
	b.WriteString(box.RenderSimple(drives.String()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Steps: %d\n", len(plan.Steps)))
	for _, step := range plan.Steps {
		b.WriteString(styles.DimmedStyle.Render("  - " + step.Title))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.DangerStyle.Render("ALL DATA on the drives listed above will be DESTROYED."))
	b.WriteString("\n")
	if !m.apply {
		b.WriteString(styles.WarningStyle.Render("Dry run: commands will be simulated, nothing is written. Use --apply for a real install."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("Press y to install, n to go back"))

	return b.String()
}
