package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/debug"
	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/exec"
	"github.com/pvermeer/zbminstall/internal/history"
	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/preflight"
	"github.com/pvermeer/zbminstall/internal/sysinfo"
	"github.com/pvermeer/zbminstall/internal/tui/app/components"
	"github.com/pvermeer/zbminstall/internal/tui/app/screens"
)

// Screen represents which wizard screen is currently active
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenMode
	ScreenDrives
	ScreenSettings
	ScreenValidate
	ScreenConfirm
	ScreenInstall
	ScreenDone
)

// Options configure the wizard
type Options struct {
	// Apply runs real commands instead of the simulated dry run
	Apply bool

	// Runner overrides the step runner, mainly for tests
	Runner installer.Runner
}

// Model is the main TUI model that manages the wizard screens
type Model struct {
	screen Screen
	opts   Options
	width  int
	height int

	// Layout components
	header components.HeaderModel
	footer components.FooterModel
	layout Layout

	// Screen models
	welcome  *screens.WelcomeModel
	mode     *screens.ModeModel
	drives   *screens.DrivesModel
	settings *screens.SettingsModel
	validate *screens.ValidateModel
	confirm  *screens.ConfirmModel
	install  *screens.InstallModel
	done     *screens.DoneModel

	// Wizard state collected along the way
	info         *sysinfo.Info
	chosenMode   installer.Mode
	chosenDrives disk.Devices
	poolSettings config.Settings
	plan         *installer.Plan

	keys KeyMap
	help help.Model
}

// New creates a new wizard model seeded with the given settings
func New(settings config.Settings, opts Options) Model {
	debug.Log("App.New: creating model, apply=%v", opts.Apply)

	width := 80
	height := 24

	header := components.NewHeader("", width)
	header.SetStep("Welcome")
	footer := components.NewFooter(width)
	layout := NewLayout(width, height)

	m := Model{
		screen:       ScreenWelcome,
		opts:         opts,
		width:        width,
		height:       height,
		header:       header,
		footer:       footer,
		layout:       layout,
		chosenMode:   installer.ModeNew,
		poolSettings: settings,
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}

	// Create the initial screen here (not in Init) because Init has a
	// value receiver
	m.welcome = screens.NewWelcomeModel()

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	debug.Log("App.Init: initializing")
	return m.welcome.Init()
}

// Update handles messages and routes them to the active screen
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		debug.Log("App.Update: window resize %dx%d", msg.Width, msg.Height)
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(m.layout.ContentWidth())
		m.footer.SetWidth(m.layout.ContentWidth())

		return m.routeToScreen(tea.WindowSizeMsg{
			Width:  m.layout.ContentWidth(),
			Height: m.layout.ContentHeight(),
		})

	case tea.KeyMsg:
		m.footer.ClearStatus()

		// ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Text inputs own the keyboard while active
		if m.screenCapturesInput() {
			return m.routeToScreen(msg)
		}

		// q quits everywhere except mid-install
		if msg.String() == "q" && m.screen != ScreenInstall {
			return m, tea.Quit
		}

		// Esc steps back through the wizard
		if msg.String() == "esc" {
			if prev, ok := m.previousScreen(); ok {
				return m.navigateToScreen(prev)
			}
			return m, nil
		}

		return m.routeToScreen(msg)

	case screens.InfoLoadedMsg:
		m.info = msg.Info
		if msg.Info != nil {
			m.header.SetHostname(msg.Info.Hostname)
			if m.poolSettings.Hostname == "" {
				m.poolSettings.Hostname = msg.Info.Hostname
			}
		}
		return m.routeToScreen(msg)

	case screens.NavigateMsg:
		return m.handleNavigation(msg)

	case screens.ModeChosenMsg:
		debug.Log("App.Update: mode chosen %s", msg.Mode)
		m.chosenMode = msg.Mode
		return m.navigateToScreen(ScreenDrives)

	case screens.DrivesChosenMsg:
		debug.Log("App.Update: %d drives chosen", len(msg.Drives))
		m.chosenDrives = msg.Drives
		return m.navigateToScreen(ScreenSettings)

	case screens.SettingsDoneMsg:
		m.poolSettings = msg.Settings
		return m.navigateToScreen(ScreenValidate)

	case screens.InstallFinishedMsg:
		return m.finishInstall(msg)

	case screens.StatusMsg:
		m.footer.SetStatus(msg.Message, msg.Type)
		return m, nil
	}

	return m.routeToScreen(msg)
}

// screenCapturesInput reports whether the active screen has a focused
// text input that should receive all keys
func (m Model) screenCapturesInput() bool {
	switch m.screen {
	case ScreenDrives:
		return m.drives != nil && m.drives.Searching()
	case ScreenSettings:
		return m.settings != nil && m.settings.Editing()
	}
	return false
}

// previousScreen returns the screen Esc should return to
func (m Model) previousScreen() (Screen, bool) {
	switch m.screen {
	case ScreenMode:
		return ScreenWelcome, true
	case ScreenDrives:
		return ScreenMode, true
	case ScreenSettings:
		return ScreenDrives, true
	case ScreenValidate:
		return ScreenSettings, true
	case ScreenConfirm:
		return ScreenValidate, true
	}
	return m.screen, false
}

// navigateToScreen navigates to the specified screen
func (m Model) navigateToScreen(screen Screen) (tea.Model, tea.Cmd) {
	debug.Log("App.navigateToScreen: %d -> %d", m.screen, screen)
	m.screen = screen
	m.updateChrome()

	switch screen {
	case ScreenWelcome:
		if m.welcome == nil {
			m.welcome = screens.NewWelcomeModel()
		}
		return m, m.welcome.Init()

	case ScreenMode:
		m.mode = screens.NewModeModel(m.chosenMode)
		return m, m.mode.Init()

	case ScreenDrives:
		m.drives = screens.NewDrivesModel(m.chosenDrives)
		return m, m.drives.Init()

	case ScreenSettings:
		hostname := ""
		if m.info != nil {
			hostname = m.info.Hostname
		}
		m.settings = screens.NewSettingsModel(m.poolSettings, hostname)
		return m, m.settings.Init()

	case ScreenValidate:
		m.validate = screens.NewValidateModel(m.preflightInput())
		return m, m.validate.Init()

	case ScreenConfirm:
		plan, err := installer.Build(m.chosenMode, m.chosenDrives, m.poolSettings)
		if err != nil {
			m.screen = ScreenValidate
			m.updateChrome()
			m.footer.SetStatus(fmt.Sprintf("cannot build install plan: %v", err), "error")
			return m, nil
		}
		m.plan = plan
		m.confirm = screens.NewConfirmModel(plan, m.opts.Apply)
		return m, m.confirm.Init()

	case ScreenInstall:
		m.install = screens.NewInstallModel(m.plan, m.runner())
		return m, m.install.Init()
	}

	return m, nil
}

// finishInstall records the outcome and moves to the completion screen
func (m Model) finishInstall(msg screens.InstallFinishedMsg) (tea.Model, tea.Cmd) {
	var runErr error
	for _, r := range msg.Results {
		if r.Err != nil {
			runErr = r.Err
			break
		}
	}

	hostname := m.poolSettings.Hostname
	names := m.chosenDrives.Names()
	if err := history.LogInstall(hostname, m.poolSettings.PoolName, names, m.opts.Apply, runErr); err != nil {
		debug.LogError("recording install history", err)
	}

	m.screen = ScreenDone
	m.updateChrome()
	m.done = screens.NewDoneModel(msg.Failed, m.opts.Apply, msg.Results)
	return m, m.done.Init()
}

// runner returns the step runner for this session
func (m Model) runner() installer.Runner {
	if m.opts.Runner != nil {
		return m.opts.Runner
	}
	if m.opts.Apply {
		return installer.NewExecRunner()
	}
	return installer.NewSimRunner()
}

// preflightInput assembles the validation input from the wizard state
func (m Model) preflightInput() preflight.Input {
	in := preflight.Input{
		Selected: m.chosenDrives.Names(),
		Devices:  m.chosenDrives,
		Mode:     m.chosenMode,
		Settings: m.poolSettings,
		Apply:    m.opts.Apply,
	}
	if m.info != nil {
		in.Info = *m.info
	}
	if m.opts.Apply {
		in.Tools = exec.Default
	}
	return in
}

// updateChrome updates the header step name and footer keybindings
func (m *Model) updateChrome() {
	switch m.screen {
	case ScreenWelcome:
		m.header.SetStep("Welcome")
		m.footer.SetKeybindings(components.WelcomeKeybindings())
	case ScreenMode:
		m.header.SetStep("Mode")
		m.footer.SetKeybindings(components.ModeKeybindings())
	case ScreenDrives:
		m.header.SetStep("Drives")
		m.footer.SetKeybindings(components.DrivesKeybindings())
	case ScreenSettings:
		m.header.SetStep("Settings")
		m.footer.SetKeybindings(components.SettingsKeybindings())
	case ScreenValidate:
		m.header.SetStep("Validate")
		m.footer.SetKeybindings(components.ValidateKeybindings())
	case ScreenConfirm:
		m.header.SetStep("Confirm")
		m.footer.SetKeybindings(components.ConfirmKeybindings())
	case ScreenInstall:
		m.header.SetStep("Install")
		m.footer.SetKeybindings(components.InstallKeybindings())
	case ScreenDone:
		m.header.SetStep("Done")
		m.footer.SetKeybindings(components.DoneKeybindings())
	}
}

// View renders the active screen inside the frame
func (m Model) View() string {
	headerContent := "  " + m.header.View()
	contentStr := m.renderContent()
	footerContent := "  " + m.footer.View()

	return m.layout.Render(headerContent, contentStr, footerContent)
}

// renderContent renders the current screen's content
func (m Model) renderContent() string {
	width := m.layout.ContentWidth()
	height := m.layout.ContentHeight()

	switch m.screen {
	case ScreenWelcome:
		if m.welcome != nil {
			return m.welcome.ViewContent(width, height)
		}
	case ScreenMode:
		if m.mode != nil {
			return m.mode.ViewContent(width, height)
		}
	case ScreenDrives:
		if m.drives != nil {
			return m.drives.ViewContent(width, height)
		}
	case ScreenSettings:
		if m.settings != nil {
			return m.settings.ViewContent(width, height)
		}
	case ScreenValidate:
		if m.validate != nil {
			return m.validate.ViewContent(width, height)
		}
	case ScreenConfirm:
		if m.confirm != nil {
			return m.confirm.ViewContent(width, height)
		}
	case ScreenInstall:
		if m.install != nil {
			return m.install.ViewContent(width, height)
		}
	case ScreenDone:
		if m.done != nil {
			return m.done.ViewContent(width, height)
		}
	}

	return "Loading..."
}

// routeToScreen routes messages to the active screen
func (m Model) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenWelcome:
		if m.welcome != nil {
			updated, cmd := m.welcome.Update(msg)
			m.welcome = updated.(*screens.WelcomeModel)
			return m, cmd
		}

	case ScreenMode:
		if m.mode != nil {
			updated, cmd := m.mode.Update(msg)
			m.mode = updated.(*screens.ModeModel)
			return m, cmd
		}

	case ScreenDrives:
		if m.drives != nil {
			updated, cmd := m.drives.Update(msg)
			m.drives = updated.(*screens.DrivesModel)
			return m, cmd
		}

	case ScreenSettings:
		if m.settings != nil {
			updated, cmd := m.settings.Update(msg)
			m.settings = updated.(*screens.SettingsModel)
			return m, cmd
		}

	case ScreenValidate:
		if m.validate != nil {
			updated, cmd := m.validate.Update(msg)
			m.validate = updated.(*screens.ValidateModel)
			return m, cmd
		}

	case ScreenConfirm:
		if m.confirm != nil {
			updated, cmd := m.confirm.Update(msg)
			m.confirm = updated.(*screens.ConfirmModel)
			return m, cmd
		}

	case ScreenInstall:
		if m.install != nil {
			updated, cmd := m.install.Update(msg)
			m.install = updated.(*screens.InstallModel)
			return m, cmd
		}

	case ScreenDone:
		if m.done != nil {
			updated, cmd := m.done.Update(msg)
			m.done = updated.(*screens.DoneModel)
			return m, cmd
		}
	}

	return m, nil
}

// handleNavigation handles screen navigation messages
func (m Model) handleNavigation(msg screens.NavigateMsg) (tea.Model, tea.Cmd) {
	switch msg.Target {
	case "welcome":
		return m.navigateToScreen(ScreenWelcome)
	case "mode":
		return m.navigateToScreen(ScreenMode)
	case "drives":
		return m.navigateToScreen(ScreenDrives)
	case "settings":
		return m.navigateToScreen(ScreenSettings)
	case "validate":
		return m.navigateToScreen(ScreenValidate)
	case "confirm":
		return m.navigateToScreen(ScreenConfirm)
	case "install":
		return m.navigateToScreen(ScreenInstall)
	case "back":
		if prev, ok := m.previousScreen(); ok {
			return m.navigateToScreen(prev)
		}
	}

	return m, nil
}
