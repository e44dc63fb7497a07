//go:build !darwin && !linux && !windows

package sound

// playForCue falls back to terminal bell on unsupported platforms
func playForCue(cue string) (playback, error) {
	return terminalBell()
}
