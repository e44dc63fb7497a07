//go:build darwin

package speech

// speakCommands builds candidate TTS invocations for macOS. The say tool
// has no volume flag; volume is honored on platforms that support it.
func speakCommands(text string, volume int) [][]string {
	return [][]string{
		{"say", text},
	}
}
