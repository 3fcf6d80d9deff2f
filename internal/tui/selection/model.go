package selection

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/pvermeer/zbminstall/internal/disk"
)

// Tab represents a drive class filter tab
type Tab string

const (
	TabAll  Tab = "all"
	TabNVMe Tab = Tab(disk.ClassNVMe)
	TabSSD  Tab = Tab(disk.ClassSSD)
	TabHDD  Tab = Tab(disk.ClassHDD)
	TabUSB  Tab = Tab(disk.ClassUSB)
)

// AllTabs returns all tabs in display order
func AllTabs() []Tab {
	return []Tab{TabAll, TabNVMe, TabSSD, TabHDD, TabUSB}
}

// Item represents a selectable drive item
type Item struct {
	Device   disk.Device
	Selected bool
}

// FilterValue returns the value used for filtering
func (i Item) FilterValue() string {
	if i.Device.Model == "" {
		return i.Device.Name
	}
	return i.Device.Name + " " + i.Device.Model
}

// Model is the Bubble Tea model for drive selection. It is embedded in
// the drive selection screen rather than run as a standalone program,
// so confirm and cancel are reported through flags instead of tea.Quit.
type Model struct {
	title      string
	items      []Item
	cursor     int
	tab        Tab
	searching  bool
	searchText textinput.Model
	filtered   []int // indices into items that match current filter
	keys       KeyMap
	help       help.Model
	showHelp   bool
	width      int
	height     int
	confirmed  bool
}

// New creates a new drive selection model
func New(title string, devices disk.Devices) Model {
	items := make([]Item, len(devices))
	for i, dev := range devices {
		items[i] = Item{Device: dev}
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 50
	ti.Width = 30

	m := Model{
		title:      title,
		items:      items,
		cursor:     0,
		tab:        TabAll,
		searching:  false,
		searchText: ti,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   false,
		width:      80,
		height:     24,
	}

	m.updateFiltered()
	return m
}

// SetSelected marks specific drives as pre-selected
func (m *Model) SetSelected(selected map[string]bool) {
	for i := range m.items {
		if selected[m.items[i].Device.Name] {
			m.items[i].Selected = true
		}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Handle search mode
		if m.searching {
			switch {
			case key.Matches(msg, m.keys.ClearSearch):
				m.searching = false
				m.searchText.SetValue("")
				m.updateFiltered()
				return m, nil
			case key.Matches(msg, m.keys.Confirm):
				m.searching = false
				return m, nil
			default:
				m.searchText, cmd = m.searchText.Update(msg)
				m.updateFiltered()
				m.cursor = 0
				return m, cmd
			}
		}

		// Normal mode keybindings
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if m.SelectedCount() > 0 {
				m.confirmed = true
			}

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-10)

		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(10)

		case key.Matches(msg, m.keys.Left):
			m.prevTab()

		case key.Matches(msg, m.keys.Right):
			m.nextTab()

		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrent()

		case key.Matches(msg, m.keys.SelectAll):
			m.selectAllVisible(true)

		case key.Matches(msg, m.keys.SelectNone):
			m.selectAllVisible(false)

		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.searchText.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp

		case key.Matches(msg, m.keys.TabAll):
			m.setTab(TabAll)
		case key.Matches(msg, m.keys.TabNVMe):
			m.setTab(TabNVMe)
		case key.Matches(msg, m.keys.TabSSD):
			m.setTab(TabSSD)
		case key.Matches(msg, m.keys.TabHDD):
			m.setTab(TabHDD)
		case key.Matches(msg, m.keys.TabUSB):
			m.setTab(TabUSB)
		}
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	return m.render()
}

// Selected returns all selected drives in list order
func (m Model) Selected() disk.Devices {
	var selected disk.Devices
	for _, item := range m.items {
		if item.Selected {
			selected = append(selected, item.Device)
		}
	}
	return selected
}

// SelectedCount returns the number of selected drives
func (m Model) SelectedCount() int {
	count := 0
	for _, item := range m.items {
		if item.Selected {
			count++
		}
	}
	return count
}

// Confirmed returns true once the user confirmed a non-empty selection
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Searching reports whether search input currently owns the keyboard
func (m Model) Searching() bool {
	return m.searching
}

// updateFiltered updates the filtered list based on tab and search
func (m *Model) updateFiltered() {
	m.filtered = nil

	// First filter by tab
	var tabFiltered []int
	for i, item := range m.items {
		if m.tab == TabAll || Tab(item.Device.Class()) == m.tab {
			tabFiltered = append(tabFiltered, i)
		}
	}

	// Then filter by search
	searchTerm := strings.TrimSpace(m.searchText.Value())
	if searchTerm == "" {
		m.filtered = tabFiltered
		return
	}

	// Build list of filter values for fuzzy search
	names := make([]string, len(tabFiltered))
	for i, idx := range tabFiltered {
		names[i] = m.items[idx].FilterValue()
	}

	matches := fuzzy.Find(searchTerm, names)
	for _, match := range matches {
		m.filtered = append(m.filtered, tabFiltered[match.Index])
	}
}

// moveCursor moves the cursor by delta positions
func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
}

// toggleCurrent toggles the current item's selection
func (m *Model) toggleCurrent() {
	if len(m.filtered) == 0 {
		return
	}

	idx := m.filtered[m.cursor]
	m.items[idx].Selected = !m.items[idx].Selected
}

// selectAllVisible selects or deselects all visible items
func (m *Model) selectAllVisible(selected bool) {
	for _, idx := range m.filtered {
		m.items[idx].Selected = selected
	}
}

// setTab changes the current tab
func (m *Model) setTab(tab Tab) {
	if m.tab != tab {
		m.tab = tab
		m.cursor = 0
		m.updateFiltered()
	}
}

// prevTab moves to the previous tab
func (m *Model) prevTab() {
	tabs := AllTabs()
	for i, tab := range tabs {
		if tab == m.tab {
			if i > 0 {
				m.setTab(tabs[i-1])
			}
			return
		}
	}
}

// nextTab moves to the next tab
func (m *Model) nextTab() {
	tabs := AllTabs()
	for i, tab := range tabs {
		if tab == m.tab {
			if i < len(tabs)-1 {
				m.setTab(tabs[i+1])
			}
			return
		}
	}
}

// countByTab returns counts of drives by tab
func (m *Model) countByTab() map[Tab]struct{ total, selected int } {
	counts := make(map[Tab]struct{ total, selected int })

	for _, item := range m.items {
		tab := Tab(item.Device.Class())
		c := counts[tab]
		c.total++
		if item.Selected {
			c.selected++
		}
		counts[tab] = c

		// Also count in "all"
		c = counts[TabAll]
		c.total++
		if item.Selected {
			c.selected++
		}
		counts[TabAll] = c
	}

	return counts
}
