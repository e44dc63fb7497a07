package sound

import (
	"fmt"
	"sync"

	"fitick/internal/ports"
)

// Player implements ports.SoundPlayer
type Player struct {
	mu      sync.Mutex
	current playback
	play    func(cue string) (playback, error)
}

// playback is a handle to an in-flight platform sound, nil for fire-and-
// forget fallbacks like the terminal bell
type playback interface {
	stop() error
}

// Verify interface compliance at compile time
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{play: playForCue}
}

// PlaySound plays the default notification sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForCue(ports.CueFinish)
}

// PlaySoundForCue plays different sounds based on the cue type. A new cue
// interrupts the previous one so overlapping boundaries never play on top
// of each other. Platform-specific implementations are in player_*.go
// files with build tags.
func (p *Player) PlaySoundForCue(cue string) error {
	p.mu.Lock()
	previous := p.current
	p.current = nil
	p.mu.Unlock()

	if previous != nil {
		_ = previous.stop()
	}

	pb, err := p.play(cue)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.current = pb
	p.mu.Unlock()
	return nil
}

// Stop halts the sound started by the most recent play call, if any
func (p *Player) Stop() error {
	p.mu.Lock()
	pb := p.current
	p.current = nil
	p.mu.Unlock()

	if pb == nil {
		return nil
	}
	return pb.stop()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() (playback, error) {
	fmt.Print("\a")
	return nil, nil
}
