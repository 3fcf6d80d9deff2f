package selection

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

// render renders the full UI
func (m Model) render() string {
	var b strings.Builder

	// Title
	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	// Tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	// Search bar (if searching)
	if m.searching {
		b.WriteString("Search: ")
		b.WriteString(m.searchText.View())
		b.WriteString("\n\n")
	}

	// Drive list
	b.WriteString(m.renderList())
	b.WriteString("\n")

	// Status line
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	// Help
	if m.showHelp {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.renderShortHelp())
	}

	return b.String()
}

// renderTabs renders the class tabs with wrapping for small windows
func (m Model) renderTabs() string {
	counts := m.countByTab()
	tabs := AllTabs()

	var rows []string
	var currentRow []string
	currentWidth := 0
	maxWidth := m.width - 4 // Leave some margin
	if maxWidth < 40 {
		maxWidth = 40
	}

	for _, tab := range tabs {
		c := counts[tab]
		label := fmt.Sprintf("%s (%d/%d)", tab, c.selected, c.total)

		var rendered string
		if tab == m.tab {
			rendered = styles.ActiveTabStyle.Render(label)
		} else {
			rendered = styles.InactiveTabStyle.Render(label)
		}

		tabWidth := lipgloss.Width(rendered)

		// Check if we need to wrap to a new row
		if currentWidth+tabWidth > maxWidth && len(currentRow) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
			currentWidth = 0
		}

		currentRow = append(currentRow, rendered)
		currentWidth += tabWidth
	}

	if len(currentRow) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
	}

	return strings.Join(rows, "\n")
}

// renderList renders the drive list
func (m Model) renderList() string {
	if len(m.filtered) == 0 {
		return styles.DimmedStyle.Render("  No drives in this class")
	}

	var lines []string

	// Calculate visible range
	overhead := 11 // title, tabs, status, help, padding
	visibleHeight := m.height - overhead
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	start := 0
	end := len(m.filtered)

	// Scroll window around cursor
	if len(m.filtered) > visibleHeight {
		half := visibleHeight / 2
		start = m.cursor - half
		if start < 0 {
			start = 0
		}
		end = start + visibleHeight
		if end > len(m.filtered) {
			end = len(m.filtered)
			start = end - visibleHeight
			if start < 0 {
				start = 0
			}
		}
	}

	if start > 0 {
		lines = append(lines, styles.DimmedStyle.Render(fmt.Sprintf("  ↑ %d more above", start)))
	}

	for i := start; i < end; i++ {
		idx := m.filtered[i]
		item := m.items[idx]
		lines = append(lines, m.renderItem(item, i == m.cursor))
	}

	if end < len(m.filtered) {
		lines = append(lines, styles.DimmedStyle.Render(fmt.Sprintf("  ↓ %d more below", len(m.filtered)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderItem renders a single drive row
func (m Model) renderItem(item Item, isCursor bool) string {
	var b strings.Builder

	// Cursor
	if isCursor {
		b.WriteString(styles.CursorStyle.Render("> "))
	} else {
		b.WriteString("  ")
	}

	// Checkbox
	if item.Selected {
		b.WriteString(styles.SelectedStyle.Render("[x]"))
	} else {
		b.WriteString("[ ]")
	}

	b.WriteString(" ")

	// Class badge
	class := item.Device.Class()
	classStyle := styles.GetClassStyle(class)
	b.WriteString(classStyle.Render(fmt.Sprintf("%-5s", class)))
	b.WriteString(" ")

	// Drive name, size, model
	label := fmt.Sprintf("%-10s %9s", item.Device.Name, item.Device.HumanSize())
	model := item.Device.Model
	if len(model) > 40 {
		model = model[:37] + "..."
	}

	if isCursor {
		b.WriteString(styles.CursorStyle.Render(label))
	} else if item.Selected {
		b.WriteString(styles.SelectedStyle.Render(label))
	} else {
		b.WriteString(label)
	}

	if model != "" {
		b.WriteString("  ")
		b.WriteString(styles.DimmedStyle.Render(model))
	}

	if item.Device.Removable {
		b.WriteString("  ")
		b.WriteString(styles.WarningStyle.Render("(removable)"))
	}

	return b.String()
}

// renderStatus renders the status line
func (m Model) renderStatus() string {
	status := fmt.Sprintf("Selected: %d | Total: %d", m.SelectedCount(), len(m.items))
	if m.SelectedCount() == 0 {
		status += " | " + styles.WarningStyle.Render("select at least one drive")
	}
	return styles.SubtitleStyle.Render(status)
}

// renderShortHelp renders the short help line
func (m Model) renderShortHelp() string {
	keys := []string{
		"space:toggle",
		"a:all",
		"n:none",
		"/:search",
		"0-4:tabs",
		"enter:continue",
		"?:help",
	}

	return styles.HelpStyle.Render(strings.Join(keys, " | "))
}
