package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// settingsField identifies a row in the settings form
type settingsField int

const (
	fieldPoolName settingsField = iota
	fieldRaid
	fieldCompression
	fieldEncryption
	fieldPassphrase
	fieldHostname
	fieldSwap

	fieldCount
)

// SettingsModel is the model for the pool settings screen
type SettingsModel struct {
	settings config.Settings
	cursor   settingsField
	editing  bool
	input    textinput.Model
	width    int
	height   int
}

// NewSettingsModel creates a new settings model seeded with the
// given settings
func NewSettingsModel(settings config.Settings, hostname string) *SettingsModel {
	if settings.Hostname == "" {
		settings.Hostname = hostname
	}

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30

	return &SettingsModel{
		settings: settings,
		input:    ti,
		width:    80,
		height:   24,
	}
}

// Init initializes the settings model
func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether a text field currently owns the keyboard
func (m *SettingsModel) Editing() bool {
	return m.editing
}

// Settings returns the current settings
func (m *SettingsModel) Settings() config.Settings {
	return m.settings
}

// Update handles messages
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateEditing handles keys while a text field is focused
func (m *SettingsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.cursor {
		case fieldPoolName:
			m.settings.PoolName = value
		case fieldPassphrase:
			m.settings.Passphrase = m.input.Value()
		case fieldHostname:
			m.settings.Hostname = value
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateNormal handles keys in navigation mode
func (m *SettingsModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "left", "h":
		m.cycleValue(-1)

	case "right", "l", " ":
		m.cycleValue(1)

	case "enter":
		if m.isTextField(m.cursor) {
			return m, m.startEditing()
		}
		settings := m.settings
		if err := settings.Validate(); err != nil {
			return m, func() tea.Msg { return StatusError(err.Error()) }
		}
		return m, func() tea.Msg { return SettingsDoneMsg{Settings: settings} }
	}

	return m, nil
}

// isTextField reports whether the field is edited through a textinput
func (m *SettingsModel) isTextField(f settingsField) bool {
	return f == fieldPoolName || f == fieldPassphrase || f == fieldHostname
}

// fieldVisible reports whether a field applies to the current settings
func (m *SettingsModel) fieldVisible(f settingsField) bool {
	if f == fieldPassphrase {
		return m.settings.Encryption
	}
	return true
}

// moveCursor moves the cursor, skipping hidden fields
func (m *SettingsModel) moveCursor(delta int) {
	next := m.cursor
	for {
		next += settingsField(delta)
		if next < 0 || next >= fieldCount {
			return
		}
		if m.fieldVisible(next) {
			m.cursor = next
			return
		}
	}
}

// startEditing focuses the text input for the current field
func (m *SettingsModel) startEditing() tea.Cmd {
	m.editing = true
	m.input.EchoMode = textinput.EchoNormal

	switch m.cursor {
	case fieldPoolName:
		m.input.Placeholder = "zroot"
		m.input.SetValue(m.settings.PoolName)
	case fieldPassphrase:
		m.input.Placeholder = "passphrase"
		m.input.EchoMode = textinput.EchoPassword
		m.input.SetValue(m.settings.Passphrase)
	case fieldHostname:
		m.input.Placeholder = "hostname"
		m.input.SetValue(m.settings.Hostname)
	}

	m.input.CursorEnd()
	return m.input.Focus()
}

// cycleValue adjusts the value of non-text fields
func (m *SettingsModel) cycleValue(delta int) {
	switch m.cursor {
	case fieldRaid:
		modes := []config.RaidMode{config.RaidSingle, config.RaidMirror, config.RaidZ1, config.RaidZ2}
		m.settings.Raid = cycle(modes, m.settings.Raid, delta)

	case fieldCompression:
		algos := []config.Compression{config.CompressionLZ4, config.CompressionZstd, config.CompressionOff}
		m.settings.Compression = cycle(algos, m.settings.Compression, delta)

	case fieldEncryption:
		m.settings.Encryption = !m.settings.Encryption
		if !m.settings.Encryption {
			m.settings.Passphrase = ""
		}

	case fieldSwap:
		m.settings.SwapGiB += delta
		if m.settings.SwapGiB < 0 {
			m.settings.SwapGiB = 0
		}
		if m.settings.SwapGiB > 64 {
			m.settings.SwapGiB = 64
		}
	}
}

// cycle returns the element delta positions away from current
func cycle[T comparable](values []T, current T, delta int) T {
	for i, v := range values {
		if v == current {
			next := (i + delta + len(values)) % len(values)
			return values[next]
		}
	}
	return values[0]
}

// View renders the settings screen (legacy)
func (m *SettingsModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *SettingsModel) ViewContent(width, height int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Pool Settings"))
	b.WriteString("\n\n")

	m.renderField(&b, fieldPoolName, "Pool name", m.settings.PoolName)
	m.renderField(&b, fieldRaid, "Topology", string(m.settings.Raid))
	m.renderField(&b, fieldCompression, "Compression", string(m.settings.Compression))
	m.renderField(&b, fieldEncryption, "Encryption", onOff(m.settings.Encryption))
	if m.settings.Encryption {
		m.renderField(&b, fieldPassphrase, "Passphrase", maskValue(m.settings.Passphrase))
	}
	m.renderField(&b, fieldHostname, "Hostname", m.settings.Hostname)
	m.renderField(&b, fieldSwap, "Swap zvol", swapLabel(m.settings.SwapGiB))

	b.WriteString("\n")
	if m.editing {
		b.WriteString(styles.HelpStyle.Render("Enter to apply, Esc to cancel"))
	} else {
		b.WriteString(styles.HelpStyle.Render("j/k to move, h/l to change, Enter to edit or continue"))
	}

	return b.String()
}

// renderField renders a single form row
func (m *SettingsModel) renderField(b *strings.Builder, f settingsField, label, value string) {
	isCursor := f == m.cursor

	b.WriteString(styles.RenderCursor(isCursor))
	b.WriteString(" ")

	labelStr := fmt.Sprintf("%-12s", label)
	if isCursor {
		b.WriteString(styles.CursorStyle.Render(labelStr))
	} else {
		b.WriteString(labelStr)
	}

	if isCursor && m.editing {
		b.WriteString(m.input.View())
	} else if value == "" {
		b.WriteString(styles.DimmedStyle.Render("(not set)"))
	} else {
		b.WriteString(styles.SelectedStyle.Render(value))
	}

	b.WriteString("\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func maskValue(s string) string {
	if s == "" {
		return ""
	}
	return strings.Repeat("*", len(s))
}

func swapLabel(gib int) string {
	if gib == 0 {
		return "disabled"
	}
	return fmt.Sprintf("%d GiB", gib)
}
