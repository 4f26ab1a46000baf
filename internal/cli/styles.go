// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ainsleyw/drobe/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#45B7D1")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFEAA7")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	HangerIcon  = "👗"
	CameraIcon  = "📷"
	SparkleIcon = "✨"
)

// typeColors mirrors the garment card palette: every clothing type gets a
// stable badge color, unknown types share the "other" gray.
var typeColors = map[string]lipgloss.Color{
	string(model.TypeTop):       lipgloss.Color("#FF6B6B"),
	string(model.TypeBottom):    lipgloss.Color("#4ECDC4"),
	string(model.TypeDress):     lipgloss.Color("#45B7D1"),
	string(model.TypeJacket):    lipgloss.Color("#96CEB4"),
	string(model.TypeShoes):     lipgloss.Color("#FFEAA7"),
	string(model.TypeAccessory): lipgloss.Color("#DDA0DD"),
	string(model.TypeOther):     lipgloss.Color("#95A5A6"),
}

// TypeStyle returns the badge style for a clothing type.
func TypeStyle(clothingType string) lipgloss.Style {
	color, ok := typeColors[clothingType]
	if !ok {
		color = typeColors[string(model.TypeOther)]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
