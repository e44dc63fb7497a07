package ui

import (
	"time"

	"fitick/internal/domain"
)

// tickMsg is the once-per-second heartbeat driving the countdown
type tickMsg time.Time

// recordSavedMsg carries the outcome of persisting a finished workout
type recordSavedMsg struct {
	record domain.WorkoutRecord
	err    error
}

// historyLoadedMsg carries a (re)loaded record list
type historyLoadedMsg struct {
	records []domain.WorkoutRecord
	err     error
}
