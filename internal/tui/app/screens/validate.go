package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/debug"
	"github.com/pvermeer/zbminstall/internal/history"
	"github.com/pvermeer/zbminstall/internal/preflight"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// validateDoneMsg carries the preflight results
type validateDoneMsg struct {
	checks []preflight.Check
}

// ValidateModel is the model for the preflight validation screen
type ValidateModel struct {
	input   preflight.Input
	checks  []preflight.Check
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

// NewValidateModel creates a new validation model
func NewValidateModel(input preflight.Input) *ValidateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return &ValidateModel{
		input:   input,
		spinner: s,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Init runs the preflight checks
func (m *ValidateModel) Init() tea.Cmd {
	input := m.input
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return validateDoneMsg{checks: preflight.Run(input)}
		},
	)
}

// Update handles messages
func (m *ValidateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case validateDoneMsg:
		m.loading = false
		m.checks = msg.checks
		failed := 0
		for _, c := range m.checks {
			if c.Status == preflight.StatusFail {
				failed++
			}
		}
		if err := history.LogValidate(m.input.Info.Hostname, failed); err != nil {
			debug.LogError("recording validation history", err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			if !m.Passed() {
				return m, func() tea.Msg {
					return StatusError("fix the failed checks before continuing")
				}
			}
			return m, func() tea.Msg { return Navigate("confirm") }
		case "r":
			m.loading = true
			return m, m.Init()
		}
	}

	return m, nil
}

// Passed reports whether no check failed
func (m *ValidateModel) Passed() bool {
	return !m.loading && preflight.AllPass(m.checks)
}

// View renders the validation screen (legacy)
func (m *ValidateModel) View() string {
	return m.ViewContent(m.width, m.height)
}

// ViewContent renders just the content area
func (m *ValidateModel) ViewContent(width, height int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Validation"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Running preflight checks...")
		return b.String()
	}

	var passCount, warnCount, failCount int
	for _, check := range m.checks {
		switch check.Status {
		case preflight.StatusPass:
			passCount++
		case preflight.StatusWarn:
			warnCount++
		default:
			failCount++
		}

		b.WriteString(styles.RenderStatus(string(check.Status)))
		b.WriteString(" ")
		line := check.Name
		if check.Message != "" {
			line += ": " + check.Message
		}
		switch check.Status {
		case preflight.StatusPass:
			b.WriteString(line)
		case preflight.StatusWarn:
			b.WriteString(styles.WarningStyle.Render(line))
		default:
			b.WriteString(styles.ErrorStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d passed, %d warnings, %d failed\n\n", passCount, warnCount, failCount))

	if m.Passed() {
		b.WriteString(styles.HelpStyle.Render("Press Enter to continue, r to re-run"))
	} else {
		b.WriteString(styles.ErrorStyle.Render("Resolve the failures above, then press r to re-run."))
	}

	return b.String()
}
