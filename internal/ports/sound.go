package ports

// Sound cue identifiers understood by the player
const (
	CueWork   = "work"
	CueRest   = "rest"
	CueFinish = "finish"
	CueTick   = "tick"
)

// SoundPlayer plays short notification cues
type SoundPlayer interface {
	// PlaySound plays the default notification sound
	PlaySound() error

	// PlaySoundForCue plays a sound for a specific cue type
	PlaySoundForCue(cue string) error

	// Stop halts any currently playing sound, best effort
	Stop() error
}
