//go:build linux

package sound

import "fitick/internal/ports"

// playForCue plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA)
func playForCue(cue string) (playback, error) {
	var candidates [][]string

	switch cue {
	case ports.CueWork:
		// Work phase starting
		candidates = [][]string{
			{"paplay", "/usr/share/sounds/freedesktop/stereo/message.oga"},
			{"aplay", "/usr/share/sounds/freedesktop/stereo/message.wav"},
		}
	case ports.CueRest:
		// Rest phase starting
		candidates = [][]string{
			{"paplay", "/usr/share/sounds/freedesktop/stereo/bell.oga"},
			{"aplay", "/usr/share/sounds/freedesktop/stereo/bell.wav"},
		}
	case ports.CueFinish:
		// Workout complete
		candidates = [][]string{
			{"paplay", "/usr/share/sounds/freedesktop/stereo/complete.oga"},
			{"aplay", "/usr/share/sounds/freedesktop/stereo/complete.wav"},
		}
	default:
		candidates = [][]string{
			{"paplay", "/usr/share/sounds/freedesktop/stereo/bell.oga"},
			{"aplay", "/usr/share/sounds/freedesktop/stereo/bell.wav"},
		}
	}

	if pb, ok := startFirst(candidates); ok {
		return pb, nil
	}
	return terminalBell()
}
