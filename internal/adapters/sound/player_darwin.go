//go:build darwin

package sound

import "fitick/internal/ports"

// playForCue plays sounds on macOS using afplay
func playForCue(cue string) (playback, error) {
	var soundFiles []string

	switch cue {
	case ports.CueWork:
		// Work phase starting - active sound
		soundFiles = []string{
			"/System/Library/Sounds/Ping.aiff",
			"/System/Library/Sounds/Pop.aiff",
		}
	case ports.CueRest:
		// Rest phase starting - calm sound
		soundFiles = []string{
			"/System/Library/Sounds/Tink.aiff",
			"/System/Library/Sounds/Purr.aiff",
		}
	case ports.CueFinish:
		// Workout complete
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Submarine.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Pop.aiff"}
	}

	candidates := make([][]string, 0, len(soundFiles))
	for _, soundFile := range soundFiles {
		candidates = append(candidates, []string{"afplay", soundFile})
	}

	if pb, ok := startFirst(candidates); ok {
		return pb, nil
	}
	return terminalBell()
}
