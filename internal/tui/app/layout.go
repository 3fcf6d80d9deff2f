package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvermeer/zbminstall/internal/tui/styles"
)

const (
	// MinContentWidth is the minimum width for the content area
	MinContentWidth = 40
)

// Layout handles the main TUI layout rendering. The wizard is linear,
// so the frame is a single full-width column: header, content, footer.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout
func NewLayout(width, height int) Layout {
	return Layout{
		width:  width,
		height: height,
	}
}

// SetSize updates the layout dimensions
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// ContentWidth returns the width available for content
func (l Layout) ContentWidth() int {
	// Total width - 2 borders - 2 padding columns
	w := l.width - 4
	if w < MinContentWidth {
		w = MinContentWidth
	}
	return w
}

// ContentHeight returns the height available for content
func (l Layout) ContentHeight() int {
	// Total height - top border (1) - header (1) - header separator (1)
	//              - footer separator (1) - footer (1) - bottom border (1) = 6 lines overhead
	return l.height - 6
}

// Render renders the full layout with header, content, and footer
func (l Layout) Render(header, content, footer string) string {
	const (
		topLeft     = "┌"
		topRight    = "┐"
		bottomLeft  = "└"
		bottomRight = "┘"
		horizontal  = "─"
		vertical    = "│"
		midLeft     = "├"
		midRight    = "┤"
	)

	innerWidth := l.width - 2
	if innerWidth < MinContentWidth {
		innerWidth = MinContentWidth
	}
	contentHeight := l.ContentHeight()

	var sb strings.Builder

	// === TOP BORDER ===
	sb.WriteString(styles.BorderStyle.Render(topLeft))
	sb.WriteString(styles.BorderStyle.Render(strings.Repeat(horizontal, innerWidth)))
	sb.WriteString(styles.BorderStyle.Render(topRight))
	sb.WriteString("\n")

	// === HEADER ROW ===
	headerContent := header
	headerWidth := lipgloss.Width(headerContent)
	if headerWidth < innerWidth {
		headerContent = headerContent + strings.Repeat(" ", innerWidth-headerWidth)
	} else if headerWidth > innerWidth {
		headerContent = truncateString(headerContent, innerWidth)
	}
	sb.WriteString(styles.BorderStyle.Render(vertical))
	sb.WriteString(headerContent)
	sb.WriteString(styles.BorderStyle.Render(vertical))
	sb.WriteString("\n")

	// === HEADER-CONTENT SEPARATOR ===
	sb.WriteString(styles.BorderStyle.Render(midLeft))
	sb.WriteString(styles.BorderStyle.Render(strings.Repeat(horizontal, innerWidth)))
	sb.WriteString(styles.BorderStyle.Render(midRight))
	sb.WriteString("\n")

	// === CONTENT ROWS ===
	contentLines := strings.Split(content, "\n")
	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = " " + contentLines[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line = line + strings.Repeat(" ", innerWidth-lineWidth)
		} else if lineWidth > innerWidth {
			line = truncateString(line, innerWidth)
		}

		sb.WriteString(styles.BorderStyle.Render(vertical))
		sb.WriteString(line)
		sb.WriteString(styles.BorderStyle.Render(vertical))
		sb.WriteString("\n")
	}

	// === CONTENT-FOOTER SEPARATOR ===
	sb.WriteString(styles.BorderStyle.Render(midLeft))
	sb.WriteString(styles.BorderStyle.Render(strings.Repeat(horizontal, innerWidth)))
	sb.WriteString(styles.BorderStyle.Render(midRight))
	sb.WriteString("\n")

	// === FOOTER ROW ===
	footerContent := footer
	footerWidth := lipgloss.Width(footerContent)
	if footerWidth < innerWidth {
		footerContent = footerContent + strings.Repeat(" ", innerWidth-footerWidth)
	} else if footerWidth > innerWidth {
		footerContent = truncateString(footerContent, innerWidth)
	}
	sb.WriteString(styles.BorderStyle.Render(vertical))
	sb.WriteString(footerContent)
	sb.WriteString(styles.BorderStyle.Render(vertical))
	sb.WriteString("\n")

	// === BOTTOM BORDER ===
	sb.WriteString(styles.BorderStyle.Render(bottomLeft))
	sb.WriteString(styles.BorderStyle.Render(strings.Repeat(horizontal, innerWidth)))
	sb.WriteString(styles.BorderStyle.Render(bottomRight))

	return sb.String()
}

// truncateString truncates a string to a maximum width
func truncateString(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if len(runes) > maxWidth-3 && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	if len(runes) > maxWidth {
		return string(runes[:maxWidth])
	}
	return s
}
