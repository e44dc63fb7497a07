package speech

import (
	"os/exec"
	"sync"

	"fitick/internal/ports"
)

// Speaker implements ports.SpeechSynthesizer on top of the platform
// text-to-speech command (say, espeak, spd-say, SAPI)
type Speaker struct {
	mu      sync.Mutex
	current *exec.Cmd
}

// Verify interface compliance at compile time
var _ ports.SpeechSynthesizer = (*Speaker)(nil)

// NewSpeaker creates a new speech synthesizer
func NewSpeaker() *Speaker {
	return &Speaker{}
}

// Speak voices the text through the first available platform tool. A new
// cue interrupts the previous one: countdown numerals must not queue up
// behind each other.
func (s *Speaker) Speak(text string, volume int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
		s.current = nil
	}

	for _, candidate := range speakCommands(text, volume) {
		cmd := exec.Command(candidate[0], candidate[1:]...)
		if err := cmd.Start(); err != nil {
			continue
		}
		go func() { _ = cmd.Wait() }()
		s.current = cmd
		return nil
	}

	// No synthesizer available; voice cues silently no-op
	return nil
}

// Stop halts any in-flight speech
func (s *Speaker) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Process == nil {
		return nil
	}
	err := s.current.Process.Kill()
	s.current = nil
	return err
}
