package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// FooterModel represents the status bar and keybindings footer
type FooterModel struct {
	width       int
	keybindings []KeyBinding
	statusMsg   string
	statusType  string // info, success, error, warning
}

// KeyBinding represents a single keybinding hint
type KeyBinding struct {
	Key  string
	Desc string
}

// NewFooter creates a new footer model
func NewFooter(width int) FooterModel {
	return FooterModel{
		width:       width,
		keybindings: WelcomeKeybindings(),
	}
}

// SetWidth updates the footer width
func (m *FooterModel) SetWidth(width int) {
	m.width = width
}

// SetKeybindings updates the keybindings to display
func (m *FooterModel) SetKeybindings(bindings []KeyBinding) {
	m.keybindings = bindings
}

// SetStatus sets a status message
func (m *FooterModel) SetStatus(msg, msgType string) {
	m.statusMsg = msg
	m.statusType = msgType
}

// ClearStatus clears the status message
func (m *FooterModel) ClearStatus() {
	m.statusMsg = ""
	m.statusType = ""
}

// View renders the footer
func (m FooterModel) View() string {
	if m.statusMsg != "" {
		return m.renderStatus()
	}

	var parts []string
	for _, kb := range m.keybindings {
		part := styles.HeaderStyle.Render(kb.Key) + " " + styles.FooterStyle.Render(kb.Desc)
		parts = append(parts, part)
	}

	content := strings.Join(parts, styles.BorderStyle.Render("  │  "))

	// Pad to width if needed
	contentWidth := lipgloss.Width(content)
	if contentWidth < m.width {
		content = content + strings.Repeat(" ", m.width-contentWidth)
	}

	return content
}

// renderStatus renders the status message line
func (m FooterModel) renderStatus() string {
	var style lipgloss.Style
	switch m.statusType {
	case "success":
		style = styles.SelectedStyle
	case "error":
		style = styles.ErrorStyle
	case "warning":
		style = styles.WarningStyle
	default:
		style = styles.FooterStyle
	}

	content := style.Render(m.statusMsg)
	contentWidth := lipgloss.Width(content)
	if contentWidth < m.width {
		content = content + strings.Repeat(" ", m.width-contentWidth)
	}
	return content
}

// RenderFullFooter renders the complete footer with borders
func (m FooterModel) RenderFullFooter() string {
	const (
		bottomLeft  = "└"
		bottomRight = "┘"
		horizontal  = "─"
		vertical    = "│"
		midLeft     = "├"
		midRight    = "┤"
	)

	innerWidth := m.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	var sb strings.Builder

	// Top border of footer (connects to main content)
	sb.WriteString(styles.BorderStyle.Render(midLeft + strings.Repeat(horizontal, innerWidth) + midRight))
	sb.WriteString("\n")

	// Footer content
	content := m.View()
	contentWidth := lipgloss.Width(content)
	if contentWidth > innerWidth-2 {
		content = truncateString(content, innerWidth-2)
		contentWidth = lipgloss.Width(content)
	}

	sb.WriteString(styles.BorderStyle.Render(vertical))
	sb.WriteString("  ")
	sb.WriteString(content)
	remaining := innerWidth - contentWidth - 2
	if remaining > 0 {
		sb.WriteString(strings.Repeat(" ", remaining))
	}
	sb.WriteString(styles.BorderStyle.Render(vertical))
	sb.WriteString("\n")

	// Bottom border
	sb.WriteString(styles.BorderStyle.Render(bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight))

	return sb.String()
}

// WelcomeKeybindings returns keybindings for the welcome screen
func WelcomeKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "Enter", Desc: "Continue"},
		{Key: "q", Desc: "Quit"},
	}
}

// ModeKeybindings returns keybindings for the mode selection screen
func ModeKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Desc: "Navigate"},
		{Key: "Enter", Desc: "Select"},
		{Key: "Esc", Desc: "Back"},
		{Key: "q", Desc: "Quit"},
	}
}

// DrivesKeybindings returns keybindings for the drive selection screen
func DrivesKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Desc: "Navigate"},
		{Key: "Space", Desc: "Toggle"},
		{Key: "Enter", Desc: "Continue"},
		{Key: "Esc", Desc: "Back"},
	}
}

// SettingsKeybindings returns keybindings for the settings screen
func SettingsKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "j/k", Desc: "Navigate"},
		{Key: "h/l", Desc: "Change Value"},
		{Key: "Enter", Desc: "Continue"},
		{Key: "Esc", Desc: "Back"},
	}
}

// ValidateKeybindings returns keybindings for the validation screen
func ValidateKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "Enter", Desc: "Continue"},
		{Key: "r", Desc: "Re-run"},
		{Key: "Esc", Desc: "Back"},
	}
}

// ConfirmKeybindings returns keybindings for the confirmation screen
func ConfirmKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "y", Desc: "Install"},
		{Key: "n/Esc", Desc: "Back"},
	}
}

// InstallKeybindings returns keybindings for the install screen
func InstallKeybindings() []KeyBinding {
	return []KeyBinding{}
}

// DoneKeybindings returns keybindings for the completion screen
func DoneKeybindings() []KeyBinding {
	return []KeyBinding{
		{Key: "Enter/q", Desc: "Exit"},
	}
}
