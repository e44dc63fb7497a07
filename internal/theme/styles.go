package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer clock and phase styles
var (
	WorkClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWork)

	RestClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRest)

	// ClosingClockStyle colors the final countdown seconds
	ClosingClockStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSetCurrent)

	PhaseLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPaused)

	FinishedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFinished)
)

// Set progress dot styles
var (
	SetDoneStyle = lipgloss.NewStyle().
			Foreground(ColorSetDone)

	SetCurrentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSetCurrent)

	SetPendingStyle = lipgloss.NewStyle().
			Foreground(ColorSetPending)
)

// History list styles
var (
	RecordTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)

	RecordMetaStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	StatsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
