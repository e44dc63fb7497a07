package services

import (
	"strconv"

	"golang.org/x/sync/errgroup"

	"fitick/internal/domain"
	"fitick/internal/logging"
	"fitick/internal/ports"
)

// Spoken phase cues
const (
	cueTextWork = "work"
	cueTextRest = "rest"
)

// maxConcurrentEffects bounds in-flight sound, speech and haptic effects
const maxConcurrentEffects = 4

// Dispatcher translates engine events into side effects. Dispatch never
// blocks the caller and never mutates timer state: every effect runs on a
// bounded errgroup and failures are logged, not returned, so a missing
// audio backend degrades a session to a silent one instead of breaking it.
// Nil effect ports are treated as absent channels.
type Dispatcher struct {
	caps    ports.CapabilityProvider
	sound   ports.SoundPlayer
	speech  ports.SpeechSynthesizer
	haptics ports.HapticDriver

	group *errgroup.Group
}

// NewDispatcher creates a dispatcher fanning out to the given effect ports
func NewDispatcher(
	caps ports.CapabilityProvider,
	sound ports.SoundPlayer,
	speech ports.SpeechSynthesizer,
	haptics ports.HapticDriver,
) *Dispatcher {
	group := &errgroup.Group{}
	group.SetLimit(maxConcurrentEffects)

	return &Dispatcher{
		caps:    caps,
		sound:   sound,
		speech:  speech,
		haptics: haptics,
		group:   group,
	}
}

// Dispatch fans out the effects for a batch of engine events
func (d *Dispatcher) Dispatch(events []domain.Event) {
	for _, event := range events {
		switch event.Kind {
		case domain.EventPhaseStarted:
			d.onPhaseStarted(event.Phase)
		case domain.EventCountdownTick:
			d.onCountdownTick(event.Phase, event.Value)
		case domain.EventPhaseEnded:
			d.pulse(ports.HapticMedium)
		case domain.EventWorkoutFinished:
			d.onWorkoutFinished()
		}
	}
}

// onPhaseStarted announces the new phase with voice and a sound cue
func (d *Dispatcher) onPhaseStarted(phase domain.Phase) {
	cue := ports.CueWork
	text := cueTextWork
	if phase == domain.PhaseRest {
		cue = ports.CueRest
		text = cueTextRest
	}

	if d.sound != nil && d.caps.SoundEnabled() && d.caps.HasAudioCapability() {
		d.run(func() error {
			return d.sound.PlaySoundForCue(cue)
		})
	}
	if d.speech != nil && d.caps.SoundEnabled() && d.caps.VoiceEnabled() && d.caps.HasAudioCapability() {
		volume := d.caps.Volume()
		d.run(func() error {
			return d.speech.Speak(text, volume)
		})
	}
}

// onCountdownTick pulses on each of the final seconds and, during rest,
// speaks the remaining count so the next work phase can be anticipated
// without watching the screen
func (d *Dispatcher) onCountdownTick(phase domain.Phase, remaining int) {
	d.pulse(ports.HapticLight)

	if phase != domain.PhaseRest {
		return
	}
	if d.speech != nil && d.caps.SoundEnabled() && d.caps.VoiceEnabled() && d.caps.HasAudioCapability() {
		volume := d.caps.Volume()
		text := strconv.Itoa(remaining)
		d.run(func() error {
			return d.speech.Speak(text, volume)
		})
	}
}

func (d *Dispatcher) onWorkoutFinished() {
	d.pulse(ports.HapticHeavy)

	if d.sound != nil && d.caps.SoundEnabled() && d.caps.HasAudioCapability() {
		d.run(func() error {
			return d.sound.PlaySoundForCue(ports.CueFinish)
		})
	}
}

// pulse fires a haptic effect when vibration is enabled and available
func (d *Dispatcher) pulse(intensity ports.HapticIntensity) {
	if !d.caps.VibrationEnabled() || !d.caps.HasHapticsCapability() {
		return
	}
	d.run(func() error {
		return d.haptics.Pulse(intensity)
	})
}

// run schedules an effect on the bounded group, logging instead of failing
func (d *Dispatcher) run(effect func() error) {
	d.group.Go(func() error {
		if err := effect(); err != nil {
			logging.Logger.Warn("Effect failed", "error", err)
		}
		return nil
	})
}

// StopAudio halts any in-progress sound and speech, best effort
func (d *Dispatcher) StopAudio() {
	if d.sound != nil {
		if err := d.sound.Stop(); err != nil {
			logging.Logger.Warn("Failed to stop sound", "error", err)
		}
	}
	if d.speech != nil {
		if err := d.speech.Stop(); err != nil {
			logging.Logger.Warn("Failed to stop speech", "error", err)
		}
	}
}

// Close waits for in-flight effects to settle
func (d *Dispatcher) Close() error {
	return d.group.Wait()
}
