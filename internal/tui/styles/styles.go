package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pvermeer/zbminstall/internal/disk"
)

// Catppuccin Mocha palette
var (
	CatRosewater = lipgloss.Color("#f5e0dc")
	CatFlamingo  = lipgloss.Color("#f2cdcd")
	CatPink      = lipgloss.Color("#f5c2e7")
	CatMauve     = lipgloss.Color("#cba6f7")
	CatRed       = lipgloss.Color("#f38ba8")
	CatMaroon    = lipgloss.Color("#eba0ac")
	CatPeach     = lipgloss.Color("#fab387")
	CatYellow    = lipgloss.Color("#f9e2af")
	CatGreen     = lipgloss.Color("#a6e3a1")
	CatTeal      = lipgloss.Color("#94e2d5")
	CatSky       = lipgloss.Color("#89dceb")
	CatSapphire  = lipgloss.Color("#74c7ec")
	CatBlue      = lipgloss.Color("#89b4fa")
	CatLavender  = lipgloss.Color("#b4befe")
	CatText      = lipgloss.Color("#cdd6f4")
	CatSubtext1  = lipgloss.Color("#bac2de")
	CatSubtext0  = lipgloss.Color("#a6adc8")
	CatOverlay2  = lipgloss.Color("#9399b2")
	CatOverlay1  = lipgloss.Color("#7f849c")
	CatOverlay0  = lipgloss.Color("#6c7086")
	CatSurface2  = lipgloss.Color("#585b70")
	CatSurface1  = lipgloss.Color("#45475a")
	CatSurface0  = lipgloss.Color("#313244")
	CatBase      = lipgloss.Color("#1e1e2e")
	CatMantle    = lipgloss.Color("#181825")
	CatCrust     = lipgloss.Color("#11111b")
)

// Colors - mapped to Catppuccin Mocha
var (
	PrimaryColor   = CatMauve
	SuccessColor   = CatGreen
	WarningColor   = CatPeach
	ErrorColor     = CatRed
	MutedColor     = CatOverlay0
	HighlightColor = CatMauve
	BorderColor    = CatSurface1
	TextColor      = CatText
)

// Base styles
var (
	// Title style for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginBottom(1)

	// Box style for panels
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(1, 2)

	// Selected item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// Cursor style for current item
	CursorStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	// Dimmed style for inactive items
	DimmedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Warning style
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Destructive banner for wipe warnings
	DangerStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Blink(false)

	// Help style for keybindings
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Category tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	// Status indicators
	CheckmarkStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			SetString("✓")

	CrossStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			SetString("✗")

	WarningMarkStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				SetString("⚠")

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Border style for box drawing
	BorderStyle = lipgloss.NewStyle().
			Foreground(BorderColor)

	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Footer style
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Separator line
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(CatSurface2)
)

// Symbols
const (
	CheckedBox   = "[x]"
	UncheckedBox = "[ ]"
	Cursor       = ">"
	NoCursor     = " "
	Separator    = "─"
)

// ClassColors maps drive classes to colors
var ClassColors = map[disk.Class]lipgloss.Color{
	disk.ClassNVMe: CatSapphire,
	disk.ClassSSD:  CatGreen,
	disk.ClassHDD:  CatYellow,
	disk.ClassUSB:  CatRed,
}

// GetClassStyle returns a style for the given drive class
func GetClassStyle(class disk.Class) lipgloss.Style {
	if color, ok := ClassColors[class]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle().Foreground(MutedColor)
}

// RenderCheckbox renders a checkbox with the given state
func RenderCheckbox(checked bool) string {
	if checked {
		return SelectedStyle.Render(CheckedBox)
	}
	return UncheckedBox
}

// RenderCursor renders a cursor or empty space
func RenderCursor(active bool) string {
	if active {
		return CursorStyle.Render(Cursor)
	}
	return NoCursor
}

// RenderStatus renders a pass/warn/fail indicator
func RenderStatus(status string) string {
	switch status {
	case "pass":
		return CheckmarkStyle.String()
	case "warn":
		return WarningMarkStyle.String()
	default:
		return CrossStyle.String()
	}
}
