package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// ModeModel is the model for the install mode selection screen
type ModeModel struct {
	modes  []installer.Mode
	cursor int
	width  int
	height int
}

// NewModeModel creates a new mode selection model
func NewModeModel(current installer.Mode) *ModeModel {
	m := &ModeModel{
		modes:  []installer.Mode{installer.ModeNew, installer.ModeExisting},
		width:  80,
		height: 24,
	}
	for i, mode := range m.modes {
		if mode == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the mode model
func (m *ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			// Wrap around both ends
			m.cursor = (m.cursor - 1 + len(m.modes)) % len(m.modes)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.modes)
		case "enter":
			mode := m.modes[m.cursor]
			return m, func() tea.Msg { return ModeChosenMsg{Mode: mode} }
		}
	}

	return m, nil
}

// Selected returns the mode under the cursor
func (m *ModeModel) Selected() installer.Mode {
	return m.modes[m.cursor]
}

// View renders the mode screen (legacy)
func (m *ModeModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *ModeModel) ViewContent(width, height int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Installation Mode"))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		isCursor := i == m.cursor

		b.WriteString(styles.RenderCursor(isCursor))
		b.WriteString(" ")
		if isCursor {
			b.WriteString(styles.CursorStyle.Render(mode.Title()))
		} else {
			b.WriteString(mode.Title())
		}
		b.WriteString("\n  ")
		b.WriteString(styles.DimmedStyle.Render(mode.Description()))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HelpStyle.Render("j/k to move, Enter to select"))

	return b.String()
}
