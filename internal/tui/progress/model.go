package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// StepMsg is sent when an install step completes
type StepMsg struct {
	Step  installer.Step
	Index int
	Total int
	Error error
}

// DoneMsg is sent when the run finishes, either because all steps
// completed or because one failed
type DoneMsg struct {
	Completed int
	Failed    bool
	Results   []installer.StepResult
}

// Model drives install step execution and renders progress. It is
// embedded in the install screen, so completion is reported with
// DoneMsg rather than tea.Quit.
type Model struct {
	title    string
	steps    []installer.Step
	runner   installer.Runner
	current  int
	spinner  spinner.Model
	progress progress.Model
	results  []installer.StepResult
	failed   bool
	done     bool
	width    int
	height   int
}

// New creates a new progress model for the given plan steps
func New(title string, steps []installer.Step, runner installer.Runner) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		title:    title,
		steps:    steps,
		runner:   runner,
		current:  0,
		spinner:  s,
		progress: p,
		results:  make([]installer.StepResult, 0, len(steps)),
		width:    80,
		height:   24,
	}
}

// Init starts step execution
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runNext(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 10
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StepMsg:
		m.results = append(m.results, installer.StepResult{
			Step: msg.Step,
			Err:  msg.Error,
		})
		m.current = msg.Index + 1

		// A failed step ends the run; nothing after it executes
		if msg.Error != nil {
			m.failed = true
			m.done = true
			return m, m.finish()
		}

		if m.current >= len(m.steps) {
			m.done = true
			return m, m.finish()
		}

		return m, m.runNext()

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// runNext returns a command that executes the next step
func (m *Model) runNext() tea.Cmd {
	if m.current >= len(m.steps) {
		return nil
	}

	step := m.steps[m.current]
	idx := m.current
	total := len(m.steps)
	runner := m.runner

	return func() tea.Msg {
		err := runner.RunStep(step)
		return StepMsg{
			Step:  step,
			Index: idx,
			Total: total,
			Error: err,
		}
	}
}

// finish returns a command that reports the final outcome
func (m *Model) finish() tea.Cmd {
	completed := 0
	for _, r := range m.results {
		if r.Err == nil {
			completed++
		}
	}
	failed := m.failed
	results := m.results

	return func() tea.Msg {
		return DoneMsg{
			Completed: completed,
			Failed:    failed,
			Results:   results,
		}
	}
}

// View renders the progress UI
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	// Progress bar
	percent := 0.0
	if len(m.steps) > 0 {
		percent = float64(m.current) / float64(len(m.steps))
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n\n")

	// Current step
	if !m.done && m.current < len(m.steps) {
		step := m.steps[m.current]
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(step.Title))
		b.WriteString(fmt.Sprintf(" (%d/%d)", m.current+1, len(m.steps)))
	}
	b.WriteString("\n\n")

	// Completed steps
	for _, result := range m.results {
		if result.Err != nil {
			b.WriteString(styles.CrossStyle.String())
			b.WriteString(" ")
			b.WriteString(styles.ErrorStyle.Render(
				fmt.Sprintf("%s - %v", result.Step.Title, result.Err)))
		} else {
			b.WriteString(styles.CheckmarkStyle.String())
			b.WriteString(" ")
			b.WriteString(styles.SelectedStyle.Render(result.Step.Title))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Results returns the per-step results so far
func (m Model) Results() []installer.StepResult {
	return m.results
}

// Failed returns true if a step failed
func (m Model) Failed() bool {
	return m.failed
}

// Done returns true once the run has ended
func (m Model) Done() bool {
	return m.done
}
