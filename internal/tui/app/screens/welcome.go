package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/sysinfo"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// WelcomeModel is the model for the welcome screen. It collects and
// shows basic system facts and refuses to continue on BIOS boot.
type WelcomeModel struct {
	info    *sysinfo.Info
	infoErr error
	loading bool
	width   int
	height  int
}

// NewWelcomeModel creates a new welcome model
func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{
		loading: true,
		width:   80,
		height:  24,
	}
}

// Init collects system information
func (m *WelcomeModel) Init() tea.Cmd {
	return func() tea.Msg {
		info, err := sysinfo.Collect()
		if err != nil {
			return InfoLoadedMsg{Err: err}
		}
		return InfoLoadedMsg{Info: &info}
	}
}

// Update handles messages
func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case InfoLoadedMsg:
		m.loading = false
		m.info = msg.Info
		m.infoErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			if m.loading {
				return m, nil
			}
			if !m.CanContinue() {
				return m, func() tea.Msg {
					return StatusError("cannot continue: system booted in legacy BIOS mode, UEFI is required")
				}
			}
			return m, func() tea.Msg { return Navigate("mode") }
		}
	}

	return m, nil
}

// CanContinue reports whether the system meets the hard requirements
func (m *WelcomeModel) CanContinue() bool {
	return m.info != nil && m.info.EFI
}

// Info returns the collected system information
func (m *WelcomeModel) Info() *sysinfo.Info {
	return m.info
}

// View renders the welcome screen (legacy)
func (m *WelcomeModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *WelcomeModel) ViewContent(width, height int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Welcome"))
	b.WriteString("\n\n")
	b.WriteString("This wizard installs ZFSBootMenu with a ZFS root pool.\n\n")

	if m.loading {
		b.WriteString(styles.DimmedStyle.Render("Collecting system information..."))
		return b.String()
	}

	if m.infoErr != nil {
		b.WriteString(styles.ErrorStyle.Render("Failed to read system information: " + m.infoErr.Error()))
		return b.String()
	}

	info := m.info

	// Boot mode is the only hard blocker
	if info.EFI {
		b.WriteString(styles.CheckmarkStyle.String() + " Boot mode: UEFI\n")
	} else {
		b.WriteString(styles.CrossStyle.String() + " " +
			styles.ErrorStyle.Render("Boot mode: legacy BIOS (UEFI required)") + "\n")
	}

	if info.RAMOK() {
		b.WriteString(fmt.Sprintf("%s Memory: %d GiB\n", styles.CheckmarkStyle.String(), info.RAMGiB()))
	} else {
		b.WriteString(styles.WarningMarkStyle.String() + " " +
			styles.WarningStyle.Render(fmt.Sprintf("Memory: %d GiB (%d GiB recommended)", info.RAMGiB(), sysinfo.MinRAMGiB)) + "\n")
	}

	b.WriteString(fmt.Sprintf("%s CPUs: %d\n", styles.CheckmarkStyle.String(), info.CPUCount))

	distro := info.Distro
	if info.DistroVersion != "" {
		distro += " " + info.DistroVersion
	}
	b.WriteString(fmt.Sprintf("%s Distribution: %s\n", styles.CheckmarkStyle.String(), distro))
	b.WriteString(styles.DimmedStyle.Render(fmt.Sprintf("  Kernel %s on %s", info.Kernel, info.Hostname)))
	b.WriteString("\n\n")

	if m.CanContinue() {
		b.WriteString(styles.HelpStyle.Render("Press Enter to continue"))
	} else {
		b.WriteString(styles.ErrorStyle.Render("This system cannot be installed. Enable UEFI boot and try again."))
	}

	return b.String()
}
