package ports

// CapabilityProvider answers, at effect-dispatch time, whether each output
// channel is enabled and available. Implementations read live preferences:
// a user who disables sound mid-session silences subsequent cues without
// restarting the timer.
type CapabilityProvider interface {
	SoundEnabled() bool
	VoiceEnabled() bool
	VibrationEnabled() bool

	// Volume returns the cue volume in [0,100]
	Volume() int

	// HasAudioCapability reports whether an audio output path exists at all
	HasAudioCapability() bool

	// HasHapticsCapability reports whether haptic output is available
	HasHapticsCapability() bool
}
