package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitick/internal/domain"
	"fitick/internal/ports"
)

// fakeCaps is a fixed capability snapshot
type fakeCaps struct {
	sound, voice, vibration bool
	volume                  int
	audio, haptics          bool
}

func (f *fakeCaps) SoundEnabled() bool         { return f.sound }
func (f *fakeCaps) VoiceEnabled() bool         { return f.voice }
func (f *fakeCaps) VibrationEnabled() bool     { return f.vibration }
func (f *fakeCaps) Volume() int                { return f.volume }
func (f *fakeCaps) HasAudioCapability() bool   { return f.audio }
func (f *fakeCaps) HasHapticsCapability() bool { return f.haptics }

func allCaps() *fakeCaps {
	return &fakeCaps{sound: true, voice: true, vibration: true, volume: 80, audio: true, haptics: true}
}

type fakeSound struct {
	mu      sync.Mutex
	cues    []string
	stopped bool
}

func (f *fakeSound) PlaySound() error { return f.PlaySoundForCue(ports.CueWork) }

func (f *fakeSound) PlaySoundForCue(cue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cues = append(f.cues, cue)
	return nil
}

func (f *fakeSound) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

type spokenCue struct {
	text   string
	volume int
}

type fakeSpeech struct {
	mu      sync.Mutex
	spoken  []spokenCue
	stopped bool
}

func (f *fakeSpeech) Speak(text string, volume int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, spokenCue{text: text, volume: volume})
	return nil
}

func (f *fakeSpeech) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

type fakeHaptics struct {
	mu     sync.Mutex
	pulses []ports.HapticIntensity
}

func (f *fakeHaptics) Pulse(intensity ports.HapticIntensity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulses = append(f.pulses, intensity)
	return nil
}

func newTestDispatcher(caps ports.CapabilityProvider) (*Dispatcher, *fakeSound, *fakeSpeech, *fakeHaptics) {
	sound := &fakeSound{}
	speech := &fakeSpeech{}
	haptics := &fakeHaptics{}
	return NewDispatcher(caps, sound, speech, haptics), sound, speech, haptics
}

func TestDispatch_PhaseStartedPlaysCueAndSpeaks(t *testing.T) {
	tests := []struct {
		name         string
		phase        domain.Phase
		expectedCue  string
		expectedText string
	}{
		{"work phase", domain.PhaseWork, ports.CueWork, cueTextWork},
		{"rest phase", domain.PhaseRest, ports.CueRest, cueTextRest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, sound, speech, _ := newTestDispatcher(allCaps())

			dispatcher.Dispatch([]domain.Event{
				{Kind: domain.EventPhaseStarted, Phase: tt.phase},
			})
			require.NoError(t, dispatcher.Close())

			assert.Equal(t, []string{tt.expectedCue}, sound.cues)
			require.Len(t, speech.spoken, 1)
			assert.Equal(t, tt.expectedText, speech.spoken[0].text)
			assert.Equal(t, 80, speech.spoken[0].volume)
		})
	}
}

func TestDispatch_CountdownTickSpeaksOnlyDuringRest(t *testing.T) {
	dispatcher, _, speech, haptics := newTestDispatcher(allCaps())

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventCountdownTick, Phase: domain.PhaseWork, Value: 3},
		{Kind: domain.EventCountdownTick, Phase: domain.PhaseRest, Value: 2},
	})
	require.NoError(t, dispatcher.Close())

	// Both ticks pulse, only the rest tick speaks its numeral
	assert.Len(t, haptics.pulses, 2)
	require.Len(t, speech.spoken, 1)
	assert.Equal(t, "2", speech.spoken[0].text)
}

func TestDispatch_PulseIntensities(t *testing.T) {
	dispatcher, _, _, haptics := newTestDispatcher(allCaps())

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventCountdownTick, Phase: domain.PhaseWork, Value: 1},
	})
	require.NoError(t, dispatcher.Close())
	assert.Equal(t, []ports.HapticIntensity{ports.HapticLight}, haptics.pulses)

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventPhaseEnded, Phase: domain.PhaseWork},
		{Kind: domain.EventWorkoutFinished, Phase: domain.PhaseWork},
	})
	require.NoError(t, dispatcher.Close())
	assert.Contains(t, haptics.pulses, ports.HapticMedium)
	assert.Contains(t, haptics.pulses, ports.HapticHeavy)
}

func TestDispatch_DisabledPreferencesSuppressEffects(t *testing.T) {
	caps := &fakeCaps{volume: 80, audio: true, haptics: true} // everything toggled off
	dispatcher, sound, speech, haptics := newTestDispatcher(caps)

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventPhaseStarted, Phase: domain.PhaseWork},
		{Kind: domain.EventCountdownTick, Phase: domain.PhaseRest, Value: 1},
		{Kind: domain.EventWorkoutFinished, Phase: domain.PhaseWork},
	})
	require.NoError(t, dispatcher.Close())

	assert.Empty(t, sound.cues)
	assert.Empty(t, speech.spoken)
	assert.Empty(t, haptics.pulses)
}

func TestDispatch_SoundOffSilencesVoice(t *testing.T) {
	caps := allCaps()
	caps.sound = false
	dispatcher, sound, speech, _ := newTestDispatcher(caps)

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventPhaseStarted, Phase: domain.PhaseWork},
		{Kind: domain.EventCountdownTick, Phase: domain.PhaseRest, Value: 2},
	})
	require.NoError(t, dispatcher.Close())

	assert.Empty(t, sound.cues)
	assert.Empty(t, speech.spoken, "voice cues require sound to be enabled too")
}

func TestDispatch_VoiceOffKeepsSoundCues(t *testing.T) {
	caps := allCaps()
	caps.voice = false
	dispatcher, sound, speech, _ := newTestDispatcher(caps)

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventPhaseStarted, Phase: domain.PhaseWork},
	})
	require.NoError(t, dispatcher.Close())

	assert.Equal(t, []string{ports.CueWork}, sound.cues)
	assert.Empty(t, speech.spoken)
}

func TestDispatch_MissingCapabilitySuppressesEffects(t *testing.T) {
	caps := allCaps()
	caps.audio = false
	caps.haptics = false
	dispatcher, sound, speech, haptics := newTestDispatcher(caps)

	dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventPhaseStarted, Phase: domain.PhaseRest},
		{Kind: domain.EventCountdownTick, Phase: domain.PhaseRest, Value: 1},
	})
	require.NoError(t, dispatcher.Close())

	assert.Empty(t, sound.cues)
	assert.Empty(t, speech.spoken)
	assert.Empty(t, haptics.pulses)
}

func TestStopAudio_HaltsSoundAndSpeech(t *testing.T) {
	dispatcher, sound, speech, _ := newTestDispatcher(allCaps())

	dispatcher.StopAudio()

	assert.True(t, sound.stopped)
	assert.True(t, speech.stopped)
}
