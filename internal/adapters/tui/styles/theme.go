package styles

import (
	"github.com/charmbracelet/lipgloss"

	"kanbodoro/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Column colors
	ColumnTodo       = lipgloss.Color("#6366F1") // Indigo
	ColumnInProgress = lipgloss.Color("#F97316") // Orange
	ColumnDone       = lipgloss.Color("#10B981") // Green

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Board
	Column = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	ColumnHeader = lipgloss.NewStyle().
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Muted).
		PaddingLeft(1)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(Primary).
			PaddingLeft(1).
			Bold(true)

	CardGrabbed = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), false, false, false, true).
			BorderForeground(Warning).
			PaddingLeft(1).
			Foreground(Warning).
			Bold(true)

	CardMeta = lipgloss.NewStyle().
			Foreground(Muted)

	// Timer panel
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	Clock = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarnMsg = lipgloss.NewStyle().
		Foreground(Warning)

	InfoMsg = lipgloss.NewStyle().
		Foreground(Info)

	// Overlays
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ColumnColor returns the accent color for a board column
func ColumnColor(c domain.Column) lipgloss.Color {
	switch c {
	case domain.ColumnTodo:
		return ColumnTodo
	case domain.ColumnInProgress:
		return ColumnInProgress
	case domain.ColumnDone:
		return ColumnDone
	default:
		return Primary
	}
}

// SessionColor returns the accent color for a pomodoro session
func SessionColor(s domain.SessionType) lipgloss.Color {
	if s.IsBreak() {
		return Secondary
	}
	return Error
}
