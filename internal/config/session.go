package config

import "fitick/internal/domain"

// NewSessionConfig snapshots the stored settings into an immutable session
// configuration. Later settings edits never alter a running session's
// timings; only effect toggles are read live.
func NewSessionConfig(settings *Settings) domain.SessionConfig {
	work := settings.EffectiveWorkTime()
	rest := settings.EffectiveRestTime()

	return domain.SessionConfig{
		WorkSeconds:      domain.Duration{Minutes: work.Minutes, Seconds: work.Seconds}.ToSeconds(),
		RestSeconds:      domain.Duration{Minutes: rest.Minutes, Seconds: rest.Seconds}.ToSeconds(),
		TotalSets:        settings.EffectiveSets(),
		Title:            settings.EffectiveTitle(),
		SoundEnabled:     settings.EffectiveSoundEnabled(),
		VibrationEnabled: settings.EffectiveVibrationEnabled(),
		VoiceEnabled:     settings.EffectiveVoiceEnabled(),
		Volume:           settings.EffectiveVolume(),
		KeepScreenOn:     settings.EffectiveKeepScreenOn(),
	}
}
