//go:build windows

package sound

import "fitick/internal/ports"

// playForCue plays sounds on Windows using PowerShell system sounds
func playForCue(cue string) (playback, error) {
	var soundCommands []string

	switch cue {
	case ports.CueWork:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case ports.CueRest:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Question.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case ports.CueFinish:
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	candidates := make([][]string, 0, len(soundCommands))
	for _, soundCmd := range soundCommands {
		candidates = append(candidates, []string{"powershell", "-c", soundCmd})
	}

	if pb, ok := startFirst(candidates); ok {
		return pb, nil
	}
	return terminalBell()
}
