package ports

// SpeechSynthesizer speaks short voice cues ("work starting", countdown
// numerals) through the platform text-to-speech tool
type SpeechSynthesizer interface {
	// Speak voices the given text at a volume in [0,100]. It returns once
	// playback has been handed to the platform tool.
	Speak(text string, volume int) error

	// Stop halts any in-flight speech, best effort
	Stop() error
}
