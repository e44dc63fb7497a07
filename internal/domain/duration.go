package domain

import "fmt"

// Duration is a minutes/seconds pair as shown in pickers. The UI caps both
// fields at 59; the engine only ever works with total seconds.
type Duration struct {
	Minutes int
	Seconds int
}

// ToSeconds converts a Duration to total seconds
func (d Duration) ToSeconds() int {
	return d.Minutes*60 + d.Seconds
}

// FromSeconds converts total seconds to a Duration
func FromSeconds(totalSeconds int) Duration {
	return Duration{
		Minutes: totalSeconds / 60,
		Seconds: totalSeconds % 60,
	}
}

// WorkoutTotals is the display-time breakdown of a configured workout
type WorkoutTotals struct {
	TotalSeconds int
	WorkSeconds  int
	RestSeconds  int
}

// Aggregate computes total work/rest time for display. It counts a rest
// after every set, including the final one, even though the live countdown
// never runs a trailing rest. The original display behaved this way and the
// mismatch is kept on purpose.
func Aggregate(work, rest Duration, sets int) WorkoutTotals {
	workTotal := work.ToSeconds() * sets
	restTotal := rest.ToSeconds() * sets
	return WorkoutTotals{
		TotalSeconds: workTotal + restTotal,
		WorkSeconds:  workTotal,
		RestSeconds:  restTotal,
	}
}

// FormatClock renders total seconds as "MM:SS"
func FormatClock(totalSeconds int) string {
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatCompact renders seconds as "45s" or "1m 30s" (used in record titles)
func FormatCompact(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	remaining := seconds % 60
	if remaining > 0 {
		return fmt.Sprintf("%dm %ds", minutes, remaining)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatLong renders seconds as "1h 2m 3s", dropping leading zero units
func FormatLong(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remaining := seconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, remaining)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, remaining)
	default:
		return fmt.Sprintf("%ds", remaining)
	}
}
