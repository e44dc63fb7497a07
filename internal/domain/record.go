package domain

import (
	"fmt"
	"time"
)

// WorkoutRecord is one completed workout as kept in history. Records are
// immutable once created.
type WorkoutRecord struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DateLabel       string `json:"date"`
	DurationSeconds int    `json:"duration"`
	Sets            int    `json:"sets"`
	WorkSeconds     int    `json:"workTime"`
	RestSeconds     int    `json:"restTime"`
	Timestamp       int64  `json:"timestamp"` // epoch milliseconds
}

// HistoryStats are the aggregate totals shown above the record list
type HistoryStats struct {
	TotalTimeSeconds int
	TotalWorkouts    int
}

// TotalStats folds the record list into aggregate totals
func TotalStats(records []WorkoutRecord) HistoryStats {
	stats := HistoryStats{}
	for _, record := range records {
		stats.TotalTimeSeconds += record.DurationSeconds
		stats.TotalWorkouts++
	}
	return stats
}

// FormatWorkoutTitle builds the record summary line, e.g. "45s/15s × 8"
func FormatWorkoutTitle(workSeconds, restSeconds, sets int) string {
	return fmt.Sprintf("%s/%s × %d",
		FormatCompact(workSeconds), FormatCompact(restSeconds), sets)
}

// FormatDateLabel renders a record timestamp relative to the current day:
// "Today • 3:04 PM", "Yesterday • 3:04 PM", or "Jan 2, 2006 • 3:04 PM".
func FormatDateLabel(timestamp time.Time, now time.Time) string {
	clock := timestamp.Format("3:04 PM")

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	recordDay := time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, timestamp.Location())

	switch {
	case recordDay.Equal(today):
		return "Today • " + clock
	case recordDay.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday • " + clock
	default:
		return timestamp.Format("Jan 2, 2006") + " • " + clock
	}
}
