//go:build linux

package speech

import "strconv"

// speakCommands builds candidate TTS invocations for Linux.
// espeak amplitude ranges 0-200, spd-say volume ranges -100..100.
func speakCommands(text string, volume int) [][]string {
	return [][]string{
		{"espeak", "-a", strconv.Itoa(volume * 2), text},
		{"spd-say", "-i", strconv.Itoa(volume*2 - 100), text},
	}
}
