package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer phase colors
const (
	ColorWork     Color = "203" // Coral red - work countdown
	ColorRest     Color = "42"  // Green - rest countdown
	ColorPaused   Color = "3"   // Yellow - paused banner
	ColorFinished Color = "86"  // Cyan - completion banner
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorSetDone    Color = "42"  // Completed set dot
	ColorSetCurrent Color = "226" // Current set dot
	ColorSetPending Color = "240" // Upcoming set dot
	ColorHelpGroup  Color = "141" // Purple
)
