package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvermeer/zbminstall/internal/tui/styles"
	"github.com/pvermeer/zbminstall/pkg/version"
)

// HeaderModel represents the global header bar
type HeaderModel struct {
	hostname string
	stepName string
	width    int
}

// NewHeader creates a new header model
func NewHeader(hostname string, width int) HeaderModel {
	return HeaderModel{
		hostname: hostname,
		width:    width,
	}
}

// SetHostname updates the host name
func (m *HeaderModel) SetHostname(name string) {
	m.hostname = name
}

// SetStep updates the wizard step shown on the right
func (m *HeaderModel) SetStep(name string) {
	m.stepName = name
}

// SetWidth updates the header width
func (m *HeaderModel) SetWidth(width int) {
	m.width = width
}

// View renders the header
func (m HeaderModel) View() string {
	// Left side: app name and version
	appName := styles.HeaderStyle.Render("ZFSBootMenu Installer")
	ver := styles.DimmedStyle.Render("v" + version.Version)
	leftSide := appName + " " + ver

	// Right side: step and host
	rightSide := styles.HeaderStyle.Render(m.stepName)
	if m.hostname != "" {
		rightSide += styles.DimmedStyle.Render(" @ " + m.hostname)
	}

	// Calculate spacing
	leftWidth := lipgloss.Width(leftSide)
	rightWidth := lipgloss.Width(rightSide)
	separator := styles.BorderStyle.Render(" │ ")
	sepWidth := lipgloss.Width(separator)

	totalContent := leftWidth + sepWidth + rightWidth
	padding := m.width - totalContent
	if padding < 0 {
		padding = 0
	}

	var sb strings.Builder
	sb.WriteString(leftSide)
	sb.WriteString(separator)
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(rightSide)

	return sb.String()
}

// RenderFullHeader renders the complete header with borders
func (m HeaderModel) RenderFullHeader() string {
	const (
		topLeft    = "┌"
		topRight   = "┐"
		horizontal = "─"
		vertical   = "│"
		midLeft    = "├"
		midRight   = "┤"
	)

	innerWidth := m.width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	var sb strings.Builder

	// Top border
	sb.WriteString(styles.BorderStyle.Render(topLeft + strings.Repeat(horizontal, innerWidth) + topRight))
	sb.WriteString("\n")

	// Header content
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

	// Bottom border (connects to the content frame)
	sb.WriteString(styles.BorderStyle.Render(midLeft + strings.Repeat(horizontal, innerWidth) + midRight))

	return sb.String()
}
