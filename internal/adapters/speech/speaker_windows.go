//go:build windows

package speech

import "fmt"

// speakCommands builds a SAPI invocation for Windows via PowerShell
func speakCommands(text string, volume int) [][]string {
	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Speech; $s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $s.Volume = %d; $s.Speak(%q)",
		volume, text)
	return [][]string{
		{"powershell", "-c", script},
	}
}
