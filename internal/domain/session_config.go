package domain

import "errors"

// Set count bounds enforced at the configuration boundary
const (
	MinSets = 1
	MaxSets = 99
)

// SessionConfig is the immutable configuration of a countdown session.
// It is snapshotted from settings (plus CLI overrides) when the session
// starts; later settings changes never alter a running session's timings.
type SessionConfig struct {
	WorkSeconds      int
	RestSeconds      int
	TotalSets        int
	Title            string
	SoundEnabled     bool
	VibrationEnabled bool
	VoiceEnabled     bool
	Volume           int
	KeepScreenOn     bool
}

// Validate rejects configurations the engine is not defended against.
// The engine itself assumes a valid config and never re-checks.
func (c SessionConfig) Validate() error {
	var errs []error
	if c.WorkSeconds <= 0 {
		errs = append(errs, ErrZeroWorkTime)
	}
	if c.RestSeconds <= 0 {
		errs = append(errs, ErrZeroRestTime)
	}
	if c.TotalSets < MinSets || c.TotalSets > MaxSets {
		errs = append(errs, ErrSetsOutOfRange)
	}
	return errors.Join(errs...)
}
