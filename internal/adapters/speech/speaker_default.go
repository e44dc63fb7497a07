//go:build !darwin && !linux && !windows

package speech

// speakCommands has no TTS tool on unsupported platforms
func speakCommands(text string, volume int) [][]string {
	return nil
}
